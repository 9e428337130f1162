package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/quizzle-app/quizzle/internal/quiz"
)

// errEnd leaves the current view.
var errEnd = errors.New("end")

// IsEnd reports whether err means the user left the view, including by closing stdin.
func IsEnd(err error) bool {
	return errors.Is(err, errEnd)
}

// InteractiveQuizCLI contains shared logic for the interactive views
type InteractiveQuizCLI struct {
	repository   quiz.QuizRepository
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	selected     *color.Color
	correct      *color.Color
	incorrect    *color.Color
}

func NewInteractiveQuizCLI(repository quiz.QuizRepository) *InteractiveQuizCLI {
	return newInteractiveQuizCLI(repository, os.Stdin, os.Stdout)
}

func newInteractiveQuizCLI(repository quiz.QuizRepository, stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		repository:   repository,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		selected:     color.New(color.FgCyan, color.Bold),
		correct:      color.New(color.FgGreen),
		incorrect:    color.New(color.FgRed),
	}
}

type Session interface {
	Session(context context.Context) error
}

func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)
		if err := cli.loop(ctx, session); err != nil {
			errCh <- err
		}
	}()
	select {
	case <-ctx.Done():
		cli.println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// loop runs session until it ends. Nested views use it directly so that only the outermost
// view installs the signal handler.
func (cli *InteractiveQuizCLI) loop(ctx context.Context, session Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := session.Session(ctx); err != nil {
			if errors.Is(err, errEnd) {
				return nil
			}
			return err
		}
	}
}

func (cli *InteractiveQuizCLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, format, args...)
}

func (cli *InteractiveQuizCLI) println(args ...any) {
	_, _ = fmt.Fprintln(cli.stdoutWriter, args...)
}

// readLine prints prompt and returns the trimmed input. The end of stdin ends the view.
func (cli *InteractiveQuizCLI) readLine(prompt string) (string, error) {
	cli.printf("%s", prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("stdinReader.ReadString() > %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readCommand splits a command like "o 2" into its name and 1-based position.
func readCommand(input string) (string, int, bool) {
	name, arg, found := strings.Cut(input, " ")
	if !found {
		return name, 0, true
	}
	position, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || position < 1 {
		return name, 0, false
	}
	return name, position, true
}
