// Package store persists quizzes and questions in MySQL.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quizzle-app/quizzle/internal/quiz"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/mock_store.go -package=mock_store

// Store is the persistence used by the API handlers. Missing records are reported as
// quiz.ErrNotFound.
type Store interface {
	CreateQuiz(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error)
	QuizExists(ctx context.Context, id string) (bool, error)
	UpdateQuiz(ctx context.Context, q quiz.Quiz) error
	// DeleteQuiz deletes the quiz and all of its questions.
	DeleteQuiz(ctx context.Context, id string) error
	// ListQuizzesByCreator returns the creator's quizzes with the given visibility, newest first.
	ListQuizzesByCreator(ctx context.Context, creator string, isPublic bool) ([]quiz.Quiz, error)
	ListPublicQuizzes(ctx context.Context) ([]quiz.Quiz, error)

	AddQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error)
	// UpdateQuestion replaces the question's content and returns the stored question.
	UpdateQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error)
	// DeleteQuestion deletes the question and returns what was deleted.
	DeleteQuestion(ctx context.Context, id string) (quiz.Question, error)
	// ListQuestions returns at most limit questions of a quiz, newest first.
	ListQuestions(ctx context.Context, quizID string, limit int) ([]quiz.Question, error)
	// ListAllQuestions returns every question of a quiz in creation order.
	ListAllQuestions(ctx context.Context, quizID string) ([]quiz.Question, error)
}

type quizRow struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	CreatorUsername string    `db:"creator_username"`
	IsPublic        bool      `db:"is_public"`
	DateCreated     time.Time `db:"date_created"`
}

func (r quizRow) toQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		CreatorUsername: r.CreatorUsername,
		IsPublic:        r.IsPublic,
		DateCreated:     formatTime(r.DateCreated),
	}
}

type questionRow struct {
	ID            string    `db:"id"`
	QuizID        string    `db:"quiz_id"`
	Question      string    `db:"question"`
	Answers       []byte    `db:"answers"`
	CorrectAnswer string    `db:"correct_answer"`
	Explanation   string    `db:"explanation"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r questionRow) toQuestion() (quiz.Question, error) {
	answers := []string{}
	if len(r.Answers) > 0 {
		if err := json.Unmarshal(r.Answers, &answers); err != nil {
			return quiz.Question{}, fmt.Errorf("json.Unmarshal(answers of %s) > %w", r.ID, err)
		}
	}
	return quiz.Question{
		ID:            r.ID,
		QuizID:        r.QuizID,
		PromptText:    r.Question,
		AnswerOptions: answers,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
	}, nil
}

func toQuestions(rows []questionRow) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(rows))
	for _, row := range rows {
		q, err := row.toQuestion()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func encodeAnswers(answers []string) (string, error) {
	if answers == nil {
		answers = []string{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(answers) > %w", err)
	}
	return string(b), nil
}

const (
	quizColumns     = "id, title, description, creator_username, is_public, date_created"
	questionColumns = "id, quiz_id, question, answers, correct_answer, explanation, created_at"
)

// MySQLStore implements Store on top of the schema in schemas/migrations.
type MySQLStore struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

var _ Store = (*MySQLStore)(nil)

func NewMySQLStore(db *sqlx.DB) *MySQLStore {
	return &MySQLStore{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *MySQLStore) CreateQuiz(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	row := quizRow{
		ID:              s.newID(),
		Title:           q.Title,
		Description:     q.Description,
		CreatorUsername: q.CreatorUsername,
		IsPublic:        q.IsPublic,
		DateCreated:     s.now(),
	}
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO quizzes (`+quizColumns+`)
		VALUES (:id, :title, :description, :creator_username, :is_public, :date_created)`,
		row)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("db.NamedExecContext(insert quiz) > %w", err)
	}
	return row.toQuiz(), nil
}

func (s *MySQLStore) QuizExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM quizzes WHERE id = ?)", id); err != nil {
		return false, fmt.Errorf("db.GetContext(quiz exists) > %w", err)
	}
	return exists, nil
}

// UpdateQuiz updates the editable fields. The creator and creation date never change.
func (s *MySQLStore) UpdateQuiz(ctx context.Context, q quiz.Quiz) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE quizzes SET title = ?, description = ?, is_public = ? WHERE id = ?",
		q.Title, q.Description, q.IsPublic, q.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update quiz) > %w", err)
	}
	return requireAffected(result)
}

func (s *MySQLStore) DeleteQuiz(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, "DELETE FROM quizzes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(delete quiz) > %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE quiz_id = ?", id); err != nil {
		return fmt.Errorf("tx.ExecContext(delete questions) > %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func (s *MySQLStore) ListQuizzesByCreator(ctx context.Context, creator string, isPublic bool) ([]quiz.Quiz, error) {
	return s.selectQuizzes(ctx,
		"SELECT "+quizColumns+" FROM quizzes WHERE creator_username = ? AND is_public = ? ORDER BY date_created DESC, id DESC",
		creator, isPublic)
}

func (s *MySQLStore) ListPublicQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	return s.selectQuizzes(ctx,
		"SELECT "+quizColumns+" FROM quizzes WHERE is_public = TRUE ORDER BY date_created DESC, id DESC")
}

func (s *MySQLStore) selectQuizzes(ctx context.Context, query string, args ...any) ([]quiz.Quiz, error) {
	var rows []quizRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(quizzes) > %w", err)
	}
	quizzes := make([]quiz.Quiz, 0, len(rows))
	for _, row := range rows {
		quizzes = append(quizzes, row.toQuiz())
	}
	return quizzes, nil
}

func (s *MySQLStore) AddQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	answers, err := encodeAnswers(q.AnswerOptions)
	if err != nil {
		return quiz.Question{}, err
	}
	q.ID = s.newID()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO questions ("+questionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		q.ID, q.QuizID, q.PromptText, answers, q.CorrectAnswer, q.Explanation, s.now())
	if err != nil {
		return quiz.Question{}, fmt.Errorf("db.ExecContext(insert question) > %w", err)
	}
	if q.AnswerOptions == nil {
		q.AnswerOptions = []string{}
	}
	return q, nil
}

// UpdateQuestion keeps the question's quiz; only its content is replaced.
func (s *MySQLStore) UpdateQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	answers, err := encodeAnswers(q.AnswerOptions)
	if err != nil {
		return quiz.Question{}, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return quiz.Question{}, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stored, err := getQuestionForUpdate(ctx, tx, q.ID)
	if err != nil {
		return quiz.Question{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE questions SET question = ?, answers = ?, correct_answer = ?, explanation = ? WHERE id = ?",
		q.PromptText, answers, q.CorrectAnswer, q.Explanation, q.ID); err != nil {
		return quiz.Question{}, fmt.Errorf("tx.ExecContext(update question) > %w", err)
	}
	if err := tx.Commit(); err != nil {
		return quiz.Question{}, fmt.Errorf("tx.Commit() > %w", err)
	}

	stored.PromptText = q.PromptText
	stored.AnswerOptions = q.AnswerOptions
	stored.CorrectAnswer = q.CorrectAnswer
	stored.Explanation = q.Explanation
	return stored, nil
}

func (s *MySQLStore) DeleteQuestion(ctx context.Context, id string) (quiz.Question, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return quiz.Question{}, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stored, err := getQuestionForUpdate(ctx, tx, id)
	if err != nil {
		return quiz.Question{}, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id); err != nil {
		return quiz.Question{}, fmt.Errorf("tx.ExecContext(delete question) > %w", err)
	}
	if err := tx.Commit(); err != nil {
		return quiz.Question{}, fmt.Errorf("tx.Commit() > %w", err)
	}
	return stored, nil
}

func getQuestionForUpdate(ctx context.Context, tx *sqlx.Tx, id string) (quiz.Question, error) {
	var row questionRow
	err := tx.GetContext(ctx, &row, "SELECT "+questionColumns+" FROM questions WHERE id = ? FOR UPDATE", id)
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.Question{}, quiz.ErrNotFound
	}
	if err != nil {
		return quiz.Question{}, fmt.Errorf("tx.GetContext(question) > %w", err)
	}
	return row.toQuestion()
}

func (s *MySQLStore) ListQuestions(ctx context.Context, quizID string, limit int) ([]quiz.Question, error) {
	var rows []questionRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT "+questionColumns+" FROM questions WHERE quiz_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		quizID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questions) > %w", err)
	}
	return toQuestions(rows)
}

func (s *MySQLStore) ListAllQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	var rows []questionRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT "+questionColumns+" FROM questions WHERE quiz_id = ? ORDER BY created_at, id",
		quizID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(all questions) > %w", err)
	}
	return toQuestions(rows)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return quiz.ErrNotFound
	}
	return nil
}
