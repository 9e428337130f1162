package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quizzle-app/quizzle/internal/quiz"
)

// DashboardScope selects which quizzes the dashboard lists first.
type DashboardScope string

const (
	ScopeMine   DashboardScope = "mine"
	ScopePublic DashboardScope = "public"
)

const dashboardMenu = "m) My quizzes, s) Study with others' quizzes, c) Create, o <n>) Open, e <n>) Edit, d <n>) Delete, q) Quit: "

// DashboardCLI is the home screen listing the user's own and others' quizzes.
type DashboardCLI struct {
	*InteractiveQuizCLI
	form    *QuizFormCLI
	scope   DashboardScope
	user    *quiz.User
	listed  []quiz.Quiz
	started bool
}

func (cli *InteractiveQuizCLI) NewDashboardCLI(validator *quiz.Validator, scope DashboardScope) *DashboardCLI {
	return &DashboardCLI{
		InteractiveQuizCLI: cli,
		form:               cli.NewQuizFormCLI(validator),
		scope:              scope,
	}
}

func (cli *DashboardCLI) Session(ctx context.Context) error {
	if !cli.started {
		cli.started = true
		cli.bold.Fprintln(cli.stdoutWriter, "Welcome to Quizzle")
		if err := cli.list(ctx, cli.scope); err != nil {
			return err
		}
	}

	input, err := cli.readLine(dashboardMenu)
	if err != nil {
		return err
	}
	name, position, ok := readCommand(input)
	if !ok {
		cli.printf("Unknown command: %s\n", input)
		return nil
	}

	switch name {
	case "q":
		return errEnd
	case "m":
		return cli.list(ctx, ScopeMine)
	case "s":
		return cli.list(ctx, ScopePublic)
	case "c":
		if _, err := cli.form.Create(ctx); err != nil {
			return cli.formFailed(err)
		}
		return cli.list(ctx, ScopeMine)
	case "o", "e", "d":
		selected, found := cli.selected(position)
		if !found {
			cli.printf("No quiz at %d\n", position)
			return nil
		}
		return cli.act(ctx, name, selected)
	}
	cli.printf("Unknown command: %s\n", input)
	return nil
}

func (cli *DashboardCLI) act(ctx context.Context, name string, selected quiz.Quiz) error {
	switch name {
	case "o":
		if err := cli.loop(ctx, cli.NewDetailCLI(selected)); err != nil {
			return err
		}
	case "e":
		if !cli.owns(selected) {
			cli.println("Only your own quizzes can be edited")
			return nil
		}
		if _, err := cli.form.Edit(ctx, selected); err != nil {
			return cli.formFailed(err)
		}
		return cli.list(ctx, ScopeMine)
	case "d":
		if !cli.owns(selected) {
			cli.println("Only your own quizzes can be deleted")
			return nil
		}
		confirmed, err := cli.form.confirm(fmt.Sprintf("Delete %s? (y/N): ", selected.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
		if err := cli.repository.DeleteQuiz(ctx, selected); err != nil {
			return fmt.Errorf("repository.DeleteQuiz(%s) > %w", selected.ID, err)
		}
		cli.correct.Fprintf(cli.stdoutWriter, "Deleted %s\n", selected.Title)
		return cli.list(ctx, ScopeMine)
	}
	return nil
}

// formFailed reports a rejected form and keeps the dashboard running.
func (cli *DashboardCLI) formFailed(err error) error {
	var validationErr *quiz.ValidationError
	switch {
	case errors.Is(err, errEnd):
		return errEnd
	case errors.As(err, &validationErr):
		cli.incorrect.Fprintln(cli.stdoutWriter, validationErr.Message())
		return nil
	case errors.Is(err, quiz.ErrInvalidRequest), errors.Is(err, quiz.ErrNotFound):
		cli.incorrect.Fprintln(cli.stdoutWriter, err)
		return nil
	}
	return err
}

func (cli *DashboardCLI) currentUser(ctx context.Context) (quiz.User, error) {
	if cli.user == nil {
		user, err := cli.repository.GetUser(ctx)
		if err != nil {
			return quiz.User{}, fmt.Errorf("repository.GetUser() > %w", err)
		}
		cli.user = &user
	}
	return *cli.user, nil
}

func (cli *DashboardCLI) owns(q quiz.Quiz) bool {
	return cli.user != nil && q.CreatorUsername == cli.user.Username
}

func (cli *DashboardCLI) selected(position int) (quiz.Quiz, bool) {
	if position < 1 || position > len(cli.listed) {
		return quiz.Quiz{}, false
	}
	return cli.listed[position-1], true
}

func (cli *DashboardCLI) list(ctx context.Context, scope DashboardScope) error {
	user, err := cli.currentUser(ctx)
	if err != nil {
		return err
	}

	cli.println()
	switch scope {
	case ScopePublic:
		quizzes, err := cli.repository.GetPublicQuizzes(ctx)
		if err != nil {
			return fmt.Errorf("repository.GetPublicQuizzes() > %w", err)
		}
		cli.listed = othersQuizzes(quizzes, user.Username)
		cli.bold.Fprintln(cli.stdoutWriter, "Study with others' quizzes")
		for i, q := range cli.listed {
			cli.printf("%d. %s by %s\n", i+1, q.Title, q.CreatorUsername)
		}
	default:
		userQuizzes, err := cli.repository.GetUserQuizzes(ctx, user.Username)
		if err != nil {
			return fmt.Errorf("repository.GetUserQuizzes(%s) > %w", user.Username, err)
		}
		cli.listed = userQuizzes.All()
		cli.bold.Fprintln(cli.stdoutWriter, "My recent quizzes")
		for i, q := range cli.listed {
			visibility := "private"
			if q.IsPublic {
				visibility = "public"
			}
			cli.printf("%d. %s (%s, created %s)\n", i+1, q.Title, visibility, formatDate(q.DateCreated))
		}
	}
	if len(cli.listed) == 0 {
		cli.println("No quizzes yet")
	}
	return nil
}

func othersQuizzes(quizzes []quiz.Quiz, username string) []quiz.Quiz {
	others := make([]quiz.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.CreatorUsername != username {
			others = append(others, q)
		}
	}
	return others
}

func formatDate(dateCreated string) string {
	created, err := time.Parse(time.RFC3339Nano, dateCreated)
	if err != nil {
		return dateCreated
	}
	return created.Format(time.DateOnly)
}
