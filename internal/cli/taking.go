package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/quizzle-app/quizzle/internal/taking"
)

// TakingCLI renders one taking session from the snapshots it observes and feeds the user's
// commands into it.
type TakingCLI struct {
	*InteractiveQuizCLI
	session *taking.Session
	view    taking.Snapshot
}

func (cli *InteractiveQuizCLI) newTakingCLI(session *taking.Session) *TakingCLI {
	takingCLI := &TakingCLI{
		InteractiveQuizCLI: cli,
		session:            session,
		view:               session.Snapshot(),
	}
	session.Subscribe(func(snapshot taking.Snapshot) {
		takingCLI.view = snapshot
	})
	return takingCLI
}

func (cli *TakingCLI) Session(ctx context.Context) error {
	switch cli.view.State {
	case taking.StateLoading:
		return cli.load(ctx)
	case taking.StateAnswering:
		return cli.answer()
	case taking.StateComplete:
		return cli.complete()
	}
	return errEnd
}

func (cli *TakingCLI) load(ctx context.Context) error {
	if cli.view.LoadErr != nil {
		return cli.unableToLoad(cli.view.LoadErr)
	}
	cli.println("Loading quiz...")
	if err := cli.session.Load(ctx); err != nil {
		if errors.Is(err, taking.ErrClosed) {
			return errEnd
		}
		return cli.unableToLoad(err)
	}
	return nil
}

func (cli *TakingCLI) unableToLoad(reason error) error {
	cli.incorrect.Fprintf(cli.stdoutWriter, "Unable to load quiz: %v\n", reason)
	if _, err := cli.readLine("b) Back to Quiz Details: "); err != nil && !errors.Is(err, errEnd) {
		return err
	}
	return errEnd
}

func (cli *TakingCLI) answer() error {
	question := cli.view.Question
	answer, answered := cli.view.Selections[question.ID]

	cli.println()
	cli.bold.Fprintf(cli.stdoutWriter, "Question %d of %d\n", cli.view.Index+1, cli.view.Total)
	cli.println(question.PromptText)
	for i, option := range question.AnswerOptions {
		if answered && option == answer {
			cli.selected.Fprintf(cli.stdoutWriter, "> %d. %s\n", i+1, option)
			continue
		}
		cli.printf("  %d. %s\n", i+1, option)
	}
	if answered {
		if question.IsCorrect(answer) {
			cli.correct.Fprintln(cli.stdoutWriter, "Correct!")
		} else {
			cli.incorrect.Fprintf(cli.stdoutWriter, "Incorrect. The answer is %s\n", question.CorrectAnswer)
		}
		if question.Explanation != "" {
			cli.italic.Fprintln(cli.stdoutWriter, question.Explanation)
		}
	}

	input, err := cli.readLine("Choose an option, n) Next, f) Finish Quiz: ")
	if err != nil {
		return err
	}
	switch input {
	case "n":
		return cli.session.Advance()
	case "f":
		return cli.session.Finish()
	}
	position, err := strconv.Atoi(input)
	if err != nil || position < 1 || position > len(question.AnswerOptions) {
		cli.printf("Unknown command: %s\n", input)
		return nil
	}
	if answered {
		cli.println("This question is already answered")
		return nil
	}
	return cli.session.SelectAnswer(question.AnswerOptions[position-1])
}

func (cli *TakingCLI) complete() error {
	result := cli.view.Result
	cli.println()
	cli.bold.Fprintln(cli.stdoutWriter, "Quiz Complete!")
	cli.printf("Score: %d/%d\n", result.Score, result.Total)

	input, err := cli.readLine("b) Back to Quiz Details: ")
	if err != nil && !errors.Is(err, errEnd) {
		return err
	}
	if err == nil && input != "b" {
		return nil
	}
	if err := cli.session.ReturnToDetail(); err != nil {
		return err
	}
	return errEnd
}
