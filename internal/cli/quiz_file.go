package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/quizzle-app/quizzle/internal/pdf"
	"github.com/quizzle-app/quizzle/internal/quiz"
)

// QuizFile is the YAML form of a quiz and its questions.
type QuizFile struct {
	quiz.Quiz `yaml:",inline"`
	Questions []quiz.Question `yaml:"questions"`
}

// QuizDocument is the data handed to the export template.
type QuizDocument struct {
	Quiz      quiz.Quiz
	Questions []quiz.Question
}

func ReadQuizFile(path string) (QuizFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return QuizFile{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var file QuizFile
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return QuizFile{}, fmt.Errorf("yaml.Decode(%s) > %w", path, err)
	}
	return file, nil
}

// ImportQuiz creates the quiz defined in a YAML file on behalf of the current user.
func ImportQuiz(ctx context.Context, repository quiz.QuizRepository, validator *quiz.Validator, path string) (quiz.Quiz, error) {
	file, err := ReadQuizFile(path)
	if err != nil {
		return quiz.Quiz{}, err
	}
	user, err := repository.GetUser(ctx)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.GetUser() > %w", err)
	}

	draft := file.Quiz
	draft.CreatorUsername = user.Username
	created, err := CreateQuizWithQuestions(ctx, repository, validator, draft, file.Questions)
	if err != nil {
		return quiz.Quiz{}, err
	}
	slog.Default().Info("quiz imported",
		"quizID", created.ID,
		"path", path,
		"questions", len(file.Questions),
	)
	return created, nil
}

// FindQuiz looks a quiz up among the current user's quizzes, then among the public ones.
func FindQuiz(ctx context.Context, repository quiz.QuizRepository, quizID string) (quiz.Quiz, error) {
	user, err := repository.GetUser(ctx)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.GetUser() > %w", err)
	}
	userQuizzes, err := repository.GetUserQuizzes(ctx, user.Username)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.GetUserQuizzes(%s) > %w", user.Username, err)
	}
	for _, q := range userQuizzes.All() {
		if q.ID == quizID {
			return q, nil
		}
	}

	publicQuizzes, err := repository.GetPublicQuizzes(ctx)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.GetPublicQuizzes() > %w", err)
	}
	for _, q := range publicQuizzes {
		if q.ID == quizID {
			return q, nil
		}
	}
	return quiz.Quiz{}, fmt.Errorf("quiz %s > %w", quizID, quiz.ErrNotFound)
}

// ExportQuiz renders a quiz with all of its questions into outputDir as Markdown and, when
// toPDF is set, converts the Markdown to PDF. It returns the path of the last file written.
func ExportQuiz(
	ctx context.Context,
	repository quiz.QuizRepository,
	tmpl *template.Template,
	outputDir string,
	quizID string,
	toPDF bool,
) (string, error) {
	q, err := FindQuiz(ctx, repository, quizID)
	if err != nil {
		return "", err
	}
	questions, err := repository.FetchAllQuestions(ctx, quizID)
	if err != nil {
		return "", fmt.Errorf("repository.FetchAllQuestions(%s) > %w", quizID, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}
	markdownPath := filepath.Join(outputDir, quizID+".md")
	output, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	err = tmpl.Execute(output, QuizDocument{Quiz: q, Questions: questions})
	if closeErr := output.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		return "", fmt.Errorf("tmpl.Execute(%s) > %w", markdownPath, err)
	}

	if !toPDF {
		return markdownPath, nil
	}
	pdfPath, err := pdf.ConvertQuizMarkdown(markdownPath, pdf.Document{
		Title:   q.Title,
		Author:  q.CreatorUsername,
		Subject: q.Description,
	})
	if err != nil {
		return markdownPath, fmt.Errorf("pdf.ConvertQuizMarkdown(%s) > %w", markdownPath, err)
	}
	return pdfPath, nil
}
