package quiz

import "context"

//go:generate mockgen -source=repository.go -destination=../mocks/quiz/mock_repository.go -package=mock_quiz

// QuestionRepository fetches the ordered questions of a quiz.
type QuestionRepository interface {
	// FetchAllQuestions returns every question of the quiz in creation order.
	FetchAllQuestions(ctx context.Context, quizID string) ([]Question, error)
	// FetchQuestions returns the preview subset shown on the quiz detail screen.
	FetchQuestions(ctx context.Context, quizID string) ([]Question, error)
}

// QuizRepository manages quizzes, their questions and the current user.
type QuizRepository interface {
	QuestionRepository

	GetUser(ctx context.Context) (User, error)
	CreateQuiz(ctx context.Context, quiz Quiz) (Quiz, error)
	UpdateQuiz(ctx context.Context, quiz Quiz) error
	DeleteQuiz(ctx context.Context, quiz Quiz) error
	GetUserQuizzes(ctx context.Context, username string) (UserQuizzes, error)
	GetPublicQuizzes(ctx context.Context) ([]Quiz, error)
	AddQuestion(ctx context.Context, question Question) (Question, error)
	UpdateQuestion(ctx context.Context, question Question) error
	DeleteQuestion(ctx context.Context, question Question) error
}
