// Package quizzle is the HTTP client of the Quizzle API. It implements quiz.QuizRepository,
// which includes the question repository used by quiz-taking sessions.
package quizzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/quizzle-app/quizzle/internal/quiz"
)

const (
	DefaultMaxRetryAttempts = 3
	defaultRetryDelay       = 100 * time.Millisecond
)

var ErrUnauthorized = errors.New("not logged in")

// StatusError is returned for non-successful API responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return quiz.ErrInvalidRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return quiz.ErrNotFound
	}
	return nil
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

var _ quiz.QuizRepository = (*Client)(nil)

func NewClient(baseURL, token string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
		retryDelay:       defaultRetryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e envelope) ok() bool {
	return e.Success
}

type successChecker interface {
	ok() bool
}

// quizRecord is the full wire form of a quiz; unlike quiz.Quiz it never omits _id.
type quizRecord struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CreatorUsername string `json:"creator_username"`
	IsPublic        bool   `json:"is_public"`
	DateCreated     string `json:"date_created"`
	ID              string `json:"_id"`
}

func newQuizRecord(q quiz.Quiz) quizRecord {
	return quizRecord{
		Title:           q.Title,
		Description:     q.Description,
		CreatorUsername: q.CreatorUsername,
		IsPublic:        q.IsPublic,
		DateCreated:     q.DateCreated,
		ID:              q.ID,
	}
}

type questionRecord struct {
	QuizID        string   `json:"quiz_id"`
	PromptText    string   `json:"question"`
	AnswerOptions []string `json:"answers"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	ID            string   `json:"_id"`
}

func newQuestionRecord(q quiz.Question) questionRecord {
	answers := q.AnswerOptions
	if answers == nil {
		answers = []string{}
	}
	return questionRecord{
		QuizID:        q.QuizID,
		PromptText:    q.PromptText,
		AnswerOptions: answers,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		ID:            q.ID,
	}
}

type createQuizRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CreatorUsername string `json:"creator_username"`
	IsPublic        bool   `json:"is_public"`
}

type addQuestionRequest struct {
	QuizID        string   `json:"quiz_id"`
	PromptText    string   `json:"question"`
	AnswerOptions []string `json:"answers"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type quizIDRequest struct {
	QuizID string `json:"quiz_id"`
}

type creatorRequest struct {
	CreatorUsername string `json:"creator_username"`
}

type userInfoResponse struct {
	envelope
	User struct {
		Email string `json:"email"`
	} `json:"user"`
}

type quizResponse struct {
	envelope
	Quiz quiz.Quiz `json:"quiz"`
}

type questionResponse struct {
	envelope
	Question quiz.Question `json:"quiz"`
}

type questionsResponse struct {
	envelope
	Questions []quiz.Question `json:"questions"`
}

type userQuizzesResponse struct {
	envelope
	quiz.UserQuizzes
}

type publicQuizzesResponse struct {
	envelope
	PublicQuizzes []quiz.Quiz `json:"public_quizzes"`
}

func (client *Client) do(ctx context.Context, method, path string, body any, result successChecker) error {
	var failure envelope
	request := client.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&failure)
	if body != nil {
		request.SetBody(body)
	}

	start := time.Now()
	response, err := request.Execute(method, path)
	if err != nil {
		return fmt.Errorf("httpClient.%s(%s) > %w", method, path, err)
	}
	slog.Default().Debug("quizzle api call",
		"method", method,
		"path", path,
		"status", response.StatusCode(),
		"elapsed", time.Since(start),
	)
	if response.IsError() {
		message := failure.Message
		if message == "" {
			message = response.String()
		}
		return &StatusError{StatusCode: response.StatusCode(), Message: message}
	}
	if !result.ok() {
		return &StatusError{StatusCode: response.StatusCode(), Message: "request was not successful: " + response.String()}
	}
	return nil
}

// read performs an idempotent call, retrying transient failures.
func (client *Client) read(ctx context.Context, method, path string, body any, result successChecker) error {
	return retry.Do(
		func() error {
			err := client.do(ctx, method, path, body, result)
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying Quizzle API call",
				"attempt", n+1,
				"path", path,
				"lastError", err)
		}),
	)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// GetUser returns the account the API token belongs to.
func (client *Client) GetUser(ctx context.Context) (quiz.User, error) {
	var result userInfoResponse
	if err := client.read(ctx, http.MethodGet, "/user_info", nil, &result); err != nil {
		return quiz.User{}, err
	}
	return quiz.User{Username: result.User.Email, Valid: result.User.Email != ""}, nil
}

func (client *Client) CreateQuiz(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	var result quizResponse
	if err := client.do(ctx, http.MethodPost, "/create_quiz", createQuizRequest{
		Title:           q.Title,
		Description:     q.Description,
		CreatorUsername: q.CreatorUsername,
		IsPublic:        q.IsPublic,
	}, &result); err != nil {
		return quiz.Quiz{}, err
	}
	return result.Quiz, nil
}

func (client *Client) UpdateQuiz(ctx context.Context, q quiz.Quiz) error {
	return client.do(ctx, http.MethodPost, "/update_quiz", newQuizRecord(q), &envelope{})
}

// DeleteQuiz deletes the quiz together with its questions.
func (client *Client) DeleteQuiz(ctx context.Context, q quiz.Quiz) error {
	return client.do(ctx, http.MethodPost, "/delete_quiz", newQuizRecord(q), &envelope{})
}

func (client *Client) GetUserQuizzes(ctx context.Context, username string) (quiz.UserQuizzes, error) {
	var result userQuizzesResponse
	if err := client.read(ctx, http.MethodPost, "/get_user_quizzes", creatorRequest{CreatorUsername: username}, &result); err != nil {
		return quiz.UserQuizzes{}, err
	}
	return result.UserQuizzes, nil
}

func (client *Client) GetPublicQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	var result publicQuizzesResponse
	if err := client.read(ctx, http.MethodGet, "/get_public_quizzes", nil, &result); err != nil {
		return nil, err
	}
	return result.PublicQuizzes, nil
}

func (client *Client) AddQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	record := newQuestionRecord(q)
	var result questionResponse
	if err := client.do(ctx, http.MethodPost, "/add_question", addQuestionRequest{
		QuizID:        record.QuizID,
		PromptText:    record.PromptText,
		AnswerOptions: record.AnswerOptions,
		CorrectAnswer: record.CorrectAnswer,
		Explanation:   record.Explanation,
	}, &result); err != nil {
		return quiz.Question{}, err
	}
	return result.Question, nil
}

func (client *Client) UpdateQuestion(ctx context.Context, q quiz.Question) error {
	return client.do(ctx, http.MethodPost, "/update_question", newQuestionRecord(q), &envelope{})
}

func (client *Client) DeleteQuestion(ctx context.Context, q quiz.Question) error {
	return client.do(ctx, http.MethodPost, "/delete_question", newQuestionRecord(q), &envelope{})
}

// FetchQuestions returns the preview subset of a quiz's questions.
func (client *Client) FetchQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	return client.fetchQuestions(ctx, "/get_questions", quizID)
}

// FetchAllQuestions returns every question of a quiz in creation order.
func (client *Client) FetchAllQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	return client.fetchQuestions(ctx, "/get_all_questions", quizID)
}

func (client *Client) fetchQuestions(ctx context.Context, path, quizID string) ([]quiz.Question, error) {
	var result questionsResponse
	if err := client.read(ctx, http.MethodPost, path, quizIDRequest{QuizID: quizID}, &result); err != nil {
		return nil, err
	}
	if result.Questions == nil {
		return []quiz.Question{}, nil
	}
	return result.Questions, nil
}
