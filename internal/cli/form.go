package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/quizzle-app/quizzle/internal/quiz"
)

const msgEnterTitle = "Enter a quiz title"

// QuizFormCLI prompts for quiz and question fields on behalf of the create and edit views.
type QuizFormCLI struct {
	*InteractiveQuizCLI
	validator *quiz.Validator
}

func (cli *InteractiveQuizCLI) NewQuizFormCLI(validator *quiz.Validator) *QuizFormCLI {
	return &QuizFormCLI{
		InteractiveQuizCLI: cli,
		validator:          validator,
	}
}

// Create asks for a new quiz and its questions, then stores them.
func (cli *QuizFormCLI) Create(ctx context.Context) (quiz.Quiz, error) {
	user, err := cli.repository.GetUser(ctx)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.GetUser() > %w", err)
	}

	cli.bold.Fprintln(cli.stdoutWriter, "Create a quiz")
	draft := quiz.Quiz{CreatorUsername: user.Username}
	if err := cli.promptQuiz(&draft); err != nil {
		return quiz.Quiz{}, err
	}

	var questions []quiz.Question
	for {
		more, err := cli.confirm("Add a question? (y/N): ")
		if err != nil {
			return quiz.Quiz{}, err
		}
		if !more {
			break
		}
		question, err := cli.promptQuestion(quiz.Question{})
		if err != nil {
			return quiz.Quiz{}, err
		}
		if question != nil {
			questions = append(questions, *question)
		}
	}

	created, err := CreateQuizWithQuestions(ctx, cli.repository, cli.validator, draft, questions)
	if err != nil {
		return quiz.Quiz{}, err
	}
	cli.correct.Fprintf(cli.stdoutWriter, "Created %s with %d questions\n", created.Title, len(questions))
	return created, nil
}

// CreateQuizWithQuestions validates everything before the first write, then creates the quiz
// and adds the questions in order. When a question cannot be added the quiz is deleted again.
func CreateQuizWithQuestions(
	ctx context.Context,
	repository quiz.QuizRepository,
	validator *quiz.Validator,
	draft quiz.Quiz,
	questions []quiz.Question,
) (quiz.Quiz, error) {
	if err := validator.ValidateQuiz(draft); err != nil {
		return quiz.Quiz{}, err
	}
	for i, question := range questions {
		if err := validator.ValidateQuestion(question); err != nil {
			return quiz.Quiz{}, fmt.Errorf("question %d > %w", i+1, err)
		}
	}

	created, err := repository.CreateQuiz(ctx, draft)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("repository.CreateQuiz() > %w", err)
	}
	for i, question := range questions {
		question.QuizID = created.ID
		if _, err := repository.AddQuestion(ctx, question); err != nil {
			err = fmt.Errorf("repository.AddQuestion(%s) > %w", created.ID, err)
			if deleteErr := repository.DeleteQuiz(ctx, created); deleteErr != nil {
				slog.Default().Warn("unable to remove partially created quiz",
					"quizID", created.ID,
					"error", deleteErr,
				)
				return created, fmt.Errorf("%w; quiz %s was left with %d of %d questions", err, created.ID, i, len(questions))
			}
			return quiz.Quiz{}, err
		}
	}
	return created, nil
}

// Edit changes the quiz fields, then lets the user add, update and delete questions.
func (cli *QuizFormCLI) Edit(ctx context.Context, current quiz.Quiz) (quiz.Quiz, error) {
	questions, err := cli.repository.FetchAllQuestions(ctx, current.ID)
	if err != nil {
		return current, fmt.Errorf("repository.FetchAllQuestions(%s) > %w", current.ID, err)
	}

	cli.bold.Fprintf(cli.stdoutWriter, "Edit %s\n", current.Title)
	updated := current
	if err := cli.promptQuiz(&updated); err != nil {
		return current, err
	}
	if err := cli.validator.ValidateQuiz(updated); err != nil {
		return current, err
	}
	if updated != current {
		if err := cli.repository.UpdateQuiz(ctx, updated); err != nil {
			return current, fmt.Errorf("repository.UpdateQuiz(%s) > %w", current.ID, err)
		}
		cli.correct.Fprintln(cli.stdoutWriter, "Quiz updated")
	}

	for {
		cli.println()
		for i, question := range questions {
			cli.printf("%d. %s\n", i+1, question.PromptText)
		}
		input, err := cli.readLine("a) Add question, u <n>) Update question, d <n>) Delete question, Enter) Done: ")
		if errors.Is(err, errEnd) || (err == nil && input == "") {
			return updated, nil
		}
		if err != nil {
			return updated, err
		}

		name, position, ok := readCommand(input)
		switch {
		case name == "a" && position == 0:
			question, err := cli.promptQuestion(quiz.Question{})
			if err != nil {
				return updated, err
			}
			if question == nil {
				continue
			}
			question.QuizID = updated.ID
			added, err := cli.repository.AddQuestion(ctx, *question)
			if err != nil {
				return updated, fmt.Errorf("repository.AddQuestion(%s) > %w", updated.ID, err)
			}
			questions = append(questions, added)
		case name == "u" && ok && position >= 1 && position <= len(questions):
			current := questions[position-1]
			question, err := cli.promptQuestion(current)
			if err != nil {
				return updated, err
			}
			if question == nil || sameQuestion(*question, current) {
				continue
			}
			if err := cli.repository.UpdateQuestion(ctx, *question); err != nil {
				return updated, fmt.Errorf("repository.UpdateQuestion(%s) > %w", current.ID, err)
			}
			questions[position-1] = *question
			cli.correct.Fprintln(cli.stdoutWriter, "Question updated")
		case name == "d" && ok && position >= 1 && position <= len(questions):
			if err := cli.repository.DeleteQuestion(ctx, questions[position-1]); err != nil {
				return updated, fmt.Errorf("repository.DeleteQuestion(%s) > %w", questions[position-1].ID, err)
			}
			questions = append(questions[:position-1], questions[position:]...)
		default:
			cli.printf("Unknown command: %s\n", input)
		}
	}
}

// promptQuiz asks for each quiz field. Empty input keeps the current value, except for an
// empty title which is asked again.
func (cli *QuizFormCLI) promptQuiz(q *quiz.Quiz) error {
	for {
		title, err := cli.readLine(withCurrent("Title", q.Title))
		if err != nil {
			return err
		}
		if title != "" {
			q.Title = title
		}
		if q.Title != "" {
			break
		}
		cli.incorrect.Fprintln(cli.stdoutWriter, msgEnterTitle)
	}

	description, err := cli.readLine(withCurrent("Description", q.Description))
	if err != nil {
		return err
	}
	if description != "" {
		q.Description = description
	}

	visibility := "n"
	if q.IsPublic {
		visibility = "y"
	}
	public, err := cli.readLine(withCurrent("Public? (y/n)", visibility))
	if err != nil {
		return err
	}
	switch public {
	case "y":
		q.IsPublic = true
	case "n":
		q.IsPublic = false
	}
	return nil
}

// promptQuestion asks for each field of a question, offering the values of current. Empty
// input keeps the current value. It returns nil when the question is invalid.
func (cli *QuizFormCLI) promptQuestion(current quiz.Question) (*quiz.Question, error) {
	question := current

	prompt, err := cli.readLine(withCurrent("Question", current.PromptText))
	if err != nil {
		return nil, err
	}
	if prompt != "" {
		question.PromptText = prompt
	}

	if len(current.AnswerOptions) > 0 {
		cli.printf("Current answers: %s\n", strings.Join(current.AnswerOptions, " | "))
	}
	var answers []string
	for {
		label := fmt.Sprintf("Answer %d (empty to stop): ", len(answers)+1)
		if len(answers) == 0 && len(current.AnswerOptions) > 0 {
			label = "Answer 1 (empty to keep the current answers): "
		}
		answer, err := cli.readLine(label)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			break
		}
		answers = append(answers, answer)
	}
	if len(answers) == 0 {
		answers = slices.Clone(current.AnswerOptions)
	}
	question.AnswerOptions = answers

	question.CorrectAnswer = ""
	if len(answers) > 0 {
		currentPosition := ""
		if i := slices.Index(answers, current.CorrectAnswer); i >= 0 {
			currentPosition = strconv.Itoa(i + 1)
		}
		input, err := cli.readLine(withCurrent("Correct answer number", currentPosition))
		if err != nil {
			return nil, err
		}
		if input == "" {
			input = currentPosition
		}
		if position, err := strconv.Atoi(input); err == nil && position >= 1 && position <= len(answers) {
			question.CorrectAnswer = answers[position-1]
		}
	}

	explanation, err := cli.readLine(withCurrent("Explanation", current.Explanation))
	if err != nil {
		return nil, err
	}
	if explanation != "" {
		question.Explanation = explanation
	}

	if err := cli.validator.ValidateQuestion(question); err != nil {
		var validationErr *quiz.ValidationError
		if errors.As(err, &validationErr) {
			cli.incorrect.Fprintf(cli.stdoutWriter, "Question discarded: %s\n", validationErr.Message())
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func sameQuestion(a, b quiz.Question) bool {
	return a.PromptText == b.PromptText &&
		slices.Equal(a.AnswerOptions, b.AnswerOptions) &&
		a.CorrectAnswer == b.CorrectAnswer &&
		a.Explanation == b.Explanation
}

func (cli *QuizFormCLI) confirm(prompt string) (bool, error) {
	input, err := cli.readLine(prompt)
	if errors.Is(err, errEnd) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return input == "y", nil
}

func withCurrent(label, current string) string {
	if current == "" {
		return label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", label, current)
}
