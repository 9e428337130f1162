package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateQuestion(t *testing.T) {
	tests := []struct {
		name         string
		question     Question
		wantErr      bool
		wantContains []string
	}{
		{
			name: "valid question",
			question: Question{
				PromptText:    "What is 2+2?",
				AnswerOptions: []string{"4", "3"},
				CorrectAnswer: "4",
				Explanation:   "Basic math",
			},
		},
		{
			name: "correct answer not among options",
			question: Question{
				PromptText:    "What is 2+2?",
				AnswerOptions: []string{"4", "3"},
				CorrectAnswer: "5",
			},
			wantErr:      true,
			wantContains: []string{"correct_answer must be one of the answers"},
		},
		{
			name: "missing prompt and options",
			question: Question{
				CorrectAnswer: "4",
			},
			wantErr: true,
			wantContains: []string{
				"question is a required field",
				"answers must contain at least 1 item",
			},
		},
		{
			name: "empty option",
			question: Question{
				PromptText:    "Capital of CA?",
				AnswerOptions: []string{"Sac", ""},
				CorrectAnswer: "Sac",
			},
			wantErr:      true,
			wantContains: []string{"answers[1] is a required field"},
		},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuestion(tt.question)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			for _, want := range tt.wantContains {
				assert.Contains(t, validationErr.Message(), want)
			}
		})
	}
}

func TestValidator_ValidateQuiz(t *testing.T) {
	tests := []struct {
		name    string
		quiz    Quiz
		wantErr string
	}{
		{
			name: "valid quiz",
			quiz: Quiz{Title: "Sample Quiz", CreatorUsername: "user@example.com"},
		},
		{
			name:    "empty title",
			quiz:    Quiz{CreatorUsername: "user@example.com"},
			wantErr: "title is a required field",
		},
		{
			name:    "missing creator",
			quiz:    Quiz{Title: "Sample Quiz"},
			wantErr: "creator_username is a required field",
		},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuiz(tt.quiz)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUserQuizzes_All(t *testing.T) {
	quizzes := UserQuizzes{
		PublicQuizzes: []Quiz{
			{ID: "a", DateCreated: "2025-01-01T00:00:00Z"},
			{ID: "c", DateCreated: "2025-03-01T00:00:00Z"},
		},
		PrivateQuizzes: []Quiz{
			{ID: "b", DateCreated: "2025-02-01T00:00:00Z"},
		},
	}

	got := quizzes.All()
	ids := make([]string, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestQuestion_HasOption(t *testing.T) {
	question := Question{AnswerOptions: []string{"Sac", "LA"}, CorrectAnswer: "Sac"}

	assert.True(t, question.HasOption("LA"))
	assert.False(t, question.HasOption("SF"))
	assert.True(t, question.IsCorrect("Sac"))
	assert.False(t, question.IsCorrect("LA"))
}
