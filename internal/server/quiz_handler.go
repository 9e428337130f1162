// Package server implements the Quizzle HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quizzle-app/quizzle/internal/auth"
	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/store"
)

const (
	msgRecordNotFound   = "Record not found"
	msgQuizIDNotExist   = "Field 'quiz_id' doesn't exist"
	msgSuccessfulUpdate = "Successful update"
	msgSuccessfulDelete = "Successful delete"
	msgInternalError    = "Internal error"
	msgUnauthorized     = "Unauthorized"
)

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type QuizHandler struct {
	store        store.Store
	validator    *quiz.Validator
	tokens       TokenParser
	previewLimit int
}

// NewQuizHandler creates the API handlers. tokens may be nil, in which case no request is
// authenticated.
func NewQuizHandler(s store.Store, validator *quiz.Validator, tokens TokenParser, previewLimit int) *QuizHandler {
	return &QuizHandler{
		store:        s,
		validator:    validator,
		tokens:       tokens,
		previewLimit: previewLimit,
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func (h *QuizHandler) internalError(c *gin.Context, err error) {
	slog.Default().Error("request failed",
		"path", c.Request.URL.Path,
		"requestID", c.GetString(contextKeyRequestID),
		"error", err,
	)
	fail(c, http.StatusInternalServerError, msgInternalError)
}

// bind validates the raw request against fields and decodes it into dst.
func bind(c *gin.Context, fields []requestField, dst any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		fail(c, http.StatusBadRequest, msgFailedToReceive)
		return false
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		fail(c, http.StatusBadRequest, msgFailedToReceive)
		return false
	}
	if message := validateRequestObject(body, fields); message != "" {
		fail(c, http.StatusBadRequest, message)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		fail(c, http.StatusBadRequest, msgFailedToReceive)
		return false
	}
	return true
}

// checkID replaces *id with its canonical form, answering 400 when it is not a valid id.
func checkID(c *gin.Context, name string, id *string) bool {
	canonical, ok := parseID(*id)
	if !ok {
		fail(c, http.StatusBadRequest, invalidFieldMessage(name))
		return false
	}
	*id = canonical
	return true
}

func checkValid(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	var validationErr *quiz.ValidationError
	if errors.As(err, &validationErr) {
		fail(c, http.StatusBadRequest, validationErr.Message())
		return false
	}
	fail(c, http.StatusBadRequest, err.Error())
	return false
}

func (h *QuizHandler) claims(c *gin.Context) (*auth.Claims, bool) {
	if h.tokens == nil {
		return nil, false
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, false
	}
	claims, err := h.tokens.Parse(token)
	if err != nil {
		slog.Default().Debug("rejected token", "error", err)
		return nil, false
	}
	return claims, true
}

func (h *QuizHandler) GetUser(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		c.JSON(http.StatusOK, quiz.User{Username: "", Valid: false})
		return
	}
	c.JSON(http.StatusOK, quiz.User{Username: claims.Email, Valid: true})
}

func (h *QuizHandler) UserInfo(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		fail(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"email": claims.Email},
	})
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var request quiz.Quiz
	if !bind(c, createQuizFields, &request) {
		return
	}
	if !checkValid(c, h.validator.ValidateQuiz(request)) {
		return
	}

	created, err := h.store.CreateQuiz(c.Request.Context(), request)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "quiz": created})
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var request quiz.Quiz
	if !bind(c, quizFields, &request) || !checkID(c, "_id", &request.ID) {
		return
	}
	if !checkValid(c, h.validator.ValidateQuiz(request)) {
		return
	}

	if err := h.store.UpdateQuiz(c.Request.Context(), request); err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSuccessfulUpdate})
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	var request quiz.Quiz
	if !bind(c, quizFields, &request) || !checkID(c, "_id", &request.ID) {
		return
	}

	if err := h.store.DeleteQuiz(c.Request.Context(), request.ID); err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSuccessfulDelete})
}

func (h *QuizHandler) GetUserQuizzes(c *gin.Context) {
	var request struct {
		CreatorUsername string `json:"creator_username"`
	}
	if !bind(c, creatorFields, &request) {
		return
	}

	ctx := c.Request.Context()
	publicQuizzes, err := h.store.ListQuizzesByCreator(ctx, request.CreatorUsername, true)
	if err != nil {
		h.internalError(c, err)
		return
	}
	privateQuizzes, err := h.store.ListQuizzesByCreator(ctx, request.CreatorUsername, false)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"public_quizzes":  orEmpty(publicQuizzes),
		"private_quizzes": orEmpty(privateQuizzes),
	})
}

func (h *QuizHandler) GetPublicQuizzes(c *gin.Context) {
	quizzes, err := h.store.ListPublicQuizzes(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "public_quizzes": orEmpty(quizzes)})
}

func (h *QuizHandler) AddQuestion(c *gin.Context) {
	var request quiz.Question
	if !bind(c, addQuestionFields, &request) || !checkID(c, "quiz_id", &request.QuizID) {
		return
	}
	if !checkValid(c, h.validator.ValidateQuestion(request)) {
		return
	}

	ctx := c.Request.Context()
	exists, err := h.store.QuizExists(ctx, request.QuizID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !exists {
		fail(c, http.StatusNotFound, msgQuizIDNotExist)
		return
	}

	added, err := h.store.AddQuestion(ctx, request)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "quiz": added})
}

func (h *QuizHandler) UpdateQuestion(c *gin.Context) {
	var request quiz.Question
	if !bind(c, questionFields, &request) || !checkID(c, "_id", &request.ID) {
		return
	}
	if !checkValid(c, h.validator.ValidateQuestion(request)) {
		return
	}

	if _, err := h.store.UpdateQuestion(c.Request.Context(), request); err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSuccessfulUpdate})
}

func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	var request quiz.Question
	if !bind(c, questionFields, &request) || !checkID(c, "_id", &request.ID) {
		return
	}

	if _, err := h.store.DeleteQuestion(c.Request.Context(), request.ID); err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSuccessfulDelete})
}

// GetQuestions returns the newest questions of a quiz for its detail preview.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	h.listQuestions(c, func(quizID string) ([]quiz.Question, error) {
		return h.store.ListQuestions(c.Request.Context(), quizID, h.previewLimit)
	})
}

// GetAllQuestions returns every question of a quiz in creation order.
func (h *QuizHandler) GetAllQuestions(c *gin.Context) {
	h.listQuestions(c, func(quizID string) ([]quiz.Question, error) {
		return h.store.ListAllQuestions(c.Request.Context(), quizID)
	})
}

func (h *QuizHandler) listQuestions(c *gin.Context, list func(quizID string) ([]quiz.Question, error)) {
	var request struct {
		QuizID string `json:"quiz_id"`
	}
	if !bind(c, quizIDFields, &request) || !checkID(c, "quiz_id", &request.QuizID) {
		return
	}

	questions, err := list(request.QuizID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": orEmpty(questions)})
}

func (h *QuizHandler) writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, quiz.ErrNotFound) {
		fail(c, http.StatusNotFound, msgRecordNotFound)
		return
	}
	h.internalError(c, err)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
