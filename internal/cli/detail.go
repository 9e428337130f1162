package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/taking"
)

// DetailCLI shows a quiz summary with a question preview and hosts taking sessions.
type DetailCLI struct {
	*InteractiveQuizCLI
	quiz       quiz.Quiz
	preview    []quiz.Question
	previewErr error
	loaded     bool
	takeOnOpen bool
	lastResult *taking.Result
}

func (cli *InteractiveQuizCLI) NewDetailCLI(q quiz.Quiz) *DetailCLI {
	return &DetailCLI{
		InteractiveQuizCLI: cli,
		quiz:               q,
	}
}

// TakeOnOpen makes the first Session start a taking session before showing the details.
func (cli *DetailCLI) TakeOnOpen() *DetailCLI {
	cli.takeOnOpen = true
	return cli
}

// LastResult returns the result of the most recent completed session.
func (cli *DetailCLI) LastResult() (taking.Result, bool) {
	if cli.lastResult == nil {
		return taking.Result{}, false
	}
	return *cli.lastResult, true
}

func (cli *DetailCLI) Session(ctx context.Context) error {
	if cli.takeOnOpen {
		cli.takeOnOpen = false
		return cli.EnterTaking(ctx)
	}
	if !cli.loaded {
		cli.preview, cli.previewErr = cli.repository.FetchQuestions(ctx, cli.quiz.ID)
		cli.loaded = true
	}
	cli.render()

	input, err := cli.readLine("t) Take quiz, b) Back: ")
	if err != nil {
		return err
	}
	switch input {
	case "t":
		return cli.EnterTaking(ctx)
	case "b":
		return errEnd
	}
	cli.printf("Unknown command: %s\n", input)
	return nil
}

func (cli *DetailCLI) render() {
	cli.println()
	cli.bold.Fprintln(cli.stdoutWriter, cli.quiz.Title)
	if cli.quiz.Description != "" {
		cli.println(cli.quiz.Description)
	}
	if cli.quiz.CreatorUsername != "" {
		cli.printf("by %s\n", cli.quiz.CreatorUsername)
	}
	if result, ok := cli.LastResult(); ok {
		cli.printf("Last result: %d/%d\n", result.Score, result.Total)
	}

	if cli.previewErr != nil {
		cli.incorrect.Fprintf(cli.stdoutWriter, "Unable to load questions: %v\n", cli.previewErr)
		return
	}
	if len(cli.preview) == 0 {
		cli.println("This quiz has no questions yet")
		return
	}
	cli.println()
	for i, question := range cli.preview {
		cli.printf("%d. %s\n", i+1, question.PromptText)
		for _, option := range question.AnswerOptions {
			if question.IsCorrect(option) {
				cli.correct.Fprintf(cli.stdoutWriter, "   * %s\n", option)
				continue
			}
			cli.printf("   - %s\n", option)
		}
		if question.Explanation != "" {
			cli.italic.Fprintf(cli.stdoutWriter, "   %s\n", question.Explanation)
		}
	}
}

// EnterTaking runs a new taking session for the quiz and keeps its result once the user
// returns to the details.
func (cli *DetailCLI) EnterTaking(ctx context.Context) error {
	session := taking.NewSession(cli.quiz.ID, cli.repository, taking.WithCompletion(func(result taking.Result) {
		cli.lastResult = &result
	}))
	defer session.Close()

	slog.Default().Debug("entering quiz",
		"session", session.ID(),
		"quizID", cli.quiz.ID,
	)
	if err := cli.loop(ctx, cli.newTakingCLI(session)); err != nil {
		return fmt.Errorf("taking session %s > %w", session.ID(), err)
	}
	return nil
}
