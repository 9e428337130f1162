package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/taking"
)

var (
	testQuiz = quiz.Quiz{
		ID:              "8f6b2c1e-3d4a-4e5f-9a0b-1c2d3e4f5a6b",
		Title:           "Capitals",
		Description:     "European capitals",
		CreatorUsername: testUsername,
		IsPublic:        true,
		DateCreated:     "2024-01-02T03:04:05Z",
	}
	testQuestions = []quiz.Question{
		{
			ID:            "q1",
			QuizID:        testQuiz.ID,
			PromptText:    "Capital of France?",
			AnswerOptions: []string{"Paris", "Lyon"},
			CorrectAnswer: "Paris",
			Explanation:   "Paris has been the capital since 987.",
		},
		{
			ID:            "q2",
			QuizID:        testQuiz.ID,
			PromptText:    "Capital of Italy?",
			AnswerOptions: []string{"Milan", "Rome"},
			CorrectAnswer: "Rome",
		},
	}
)

func TestTakingCLI_Session(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		questions  []quiz.Question
		fetchErr   error
		wantState  taking.State
		wantResult *taking.Result
		wantOutput []string
	}{
		{
			name:      "answers, advances and finishes",
			input:     "1\nn\nf\nb\n",
			questions: testQuestions,
			wantState: taking.StateComplete,
			wantResult: &taking.Result{
				Score: 1,
				Total: 2,
			},
			wantOutput: []string{
				"Loading quiz...",
				"Question 1 of 2",
				"> 1. Paris",
				"Correct!",
				"Paris has been the capital since 987.",
				"Question 2 of 2",
				"  1. Milan",
				"Quiz Complete!",
				"Score: 1/2",
			},
		},
		{
			name:      "keeps the first selection",
			input:     "2\n1\nn\nn\nb\n",
			questions: testQuestions,
			wantState: taking.StateComplete,
			wantResult: &taking.Result{
				Score: 0,
				Total: 2,
			},
			wantOutput: []string{
				"> 2. Lyon",
				"Incorrect. The answer is Paris",
				"This question is already answered",
				"Score: 0/2",
			},
		},
		{
			name:      "ignores unknown commands",
			input:     "x\n3\nf\nb\n",
			questions: testQuestions,
			wantState: taking.StateComplete,
			wantResult: &taking.Result{
				Score: 0,
				Total: 2,
			},
			wantOutput: []string{
				"Unknown command: x",
				"Unknown command: 3",
				"Score: 0/2",
			},
		},
		{
			name:      "fetch failure",
			input:     "b\n",
			fetchErr:  errors.New("connection refused"),
			wantState: taking.StateLoading,
			wantOutput: []string{
				"Loading quiz...",
				"Unable to load quiz: repository.FetchAllQuestions(" + testQuiz.ID + ") > connection refused",
			},
		},
		{
			name:      "no questions",
			input:     "b\n",
			questions: []quiz.Question{},
			wantState: taking.StateLoading,
			wantOutput: []string{
				"Unable to load quiz",
				taking.ErrNoQuestions.Error(),
			},
		},
		{
			name:      "end of input while answering",
			input:     "1\n",
			questions: testQuestions,
			wantState: taking.StateAnswering,
			wantOutput: []string{
				"Question 1 of 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, repository, stdout := newTestCLI(t, tt.input)
			repository.EXPECT().FetchAllQuestions(gomock.Any(), testQuiz.ID).Return(tt.questions, tt.fetchErr)

			var got *taking.Result
			session := taking.NewSession(testQuiz.ID, repository, taking.WithCompletion(func(result taking.Result) {
				got = &result
			}))
			require.NoError(t, cli.loop(context.Background(), cli.newTakingCLI(session)))

			assert.Equal(t, tt.wantState, session.State())
			assert.Equal(t, tt.wantResult, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestDetailCLI_Session(t *testing.T) {
	t.Run("takes the quiz and shows the last result", func(t *testing.T) {
		cli, repository, stdout := newTestCLI(t, "t\n1\nn\n2\nn\nb\nb\n")
		repository.EXPECT().FetchQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions[:1], nil)
		repository.EXPECT().FetchAllQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil)

		detail := cli.NewDetailCLI(testQuiz)
		require.NoError(t, cli.loop(context.Background(), detail))

		result, ok := detail.LastResult()
		require.True(t, ok)
		assert.Equal(t, taking.Result{Score: 2, Total: 2}, result)
		output := stdout.String()
		assert.Contains(t, output, "Capitals\nEuropean capitals\nby "+testUsername)
		assert.Contains(t, output, "1. Capital of France?\n   * Paris\n   - Lyon\n   Paris has been the capital since 987.\n")
		assert.Contains(t, output, "Score: 2/2")
		assert.Contains(t, output, "Last result: 2/2")
	})

	t.Run("retaking starts a new session", func(t *testing.T) {
		cli, repository, stdout := newTestCLI(t, "t\nf\nb\nt\n1\nf\nb\nb\n")
		repository.EXPECT().FetchQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil)
		repository.EXPECT().FetchAllQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil).Times(2)

		detail := cli.NewDetailCLI(testQuiz)
		require.NoError(t, cli.loop(context.Background(), detail))

		result, ok := detail.LastResult()
		require.True(t, ok)
		assert.Equal(t, taking.Result{Score: 1, Total: 2}, result)
		assert.Contains(t, stdout.String(), "Last result: 0/2")
		assert.Contains(t, stdout.String(), "Last result: 1/2")
	})

	t.Run("preview failure keeps the menu", func(t *testing.T) {
		cli, repository, stdout := newTestCLI(t, "x\nb\n")
		repository.EXPECT().FetchQuestions(gomock.Any(), testQuiz.ID).Return(nil, quiz.ErrNotFound)

		detail := cli.NewDetailCLI(testQuiz)
		require.NoError(t, cli.loop(context.Background(), detail))

		_, ok := detail.LastResult()
		assert.False(t, ok)
		assert.Contains(t, stdout.String(), "Unable to load questions: record not found")
		assert.Contains(t, stdout.String(), "Unknown command: x")
	})
}

func TestDetailCLI_TakeOnOpen(t *testing.T) {
	cli, repository, stdout := newTestCLI(t, "1\nf\nb\nb\n")
	gomock.InOrder(
		repository.EXPECT().FetchAllQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil),
		repository.EXPECT().FetchQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil),
	)

	detail := cli.NewDetailCLI(testQuiz).TakeOnOpen()
	require.NoError(t, cli.loop(context.Background(), detail))

	assert.Contains(t, stdout.String(), "Score: 1/2")
	assert.Contains(t, stdout.String(), "Last result: 1/2")
}

func TestTakingCLI_FollowsSessionChanges(t *testing.T) {
	cli, repository, stdout := newTestCLI(t, "f\nb\n")
	repository.EXPECT().FetchAllQuestions(gomock.Any(), testQuiz.ID).Return(testQuestions, nil)

	session := taking.NewSession(testQuiz.ID, repository)
	takingCLI := cli.newTakingCLI(session)
	require.NoError(t, session.Load(context.Background()))
	require.NoError(t, session.SelectAnswer("Paris"))

	require.NoError(t, cli.loop(context.Background(), takingCLI))

	assert.Contains(t, stdout.String(), "> 1. Paris")
	assert.Contains(t, stdout.String(), "Correct!")
	assert.Contains(t, stdout.String(), "Score: 1/2")
	assert.NotContains(t, stdout.String(), "Loading quiz...")
}
