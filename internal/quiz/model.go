// Package quiz provides the Quizzle domain models, validation and repository interfaces.
package quiz

import (
	"errors"
	"slices"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidRequest = errors.New("invalid request")
)

// Quiz is a titled collection of questions owned by a creator.
type Quiz struct {
	ID              string `json:"_id,omitempty" yaml:"-"`
	Title           string `json:"title" yaml:"title" validate:"required"`
	Description     string `json:"description" yaml:"description"`
	CreatorUsername string `json:"creator_username" yaml:"-" validate:"required"`
	IsPublic        bool   `json:"is_public" yaml:"is_public"`
	DateCreated     string `json:"date_created,omitempty" yaml:"-"`
}

// Question is a single quiz item. CorrectAnswer must be one of AnswerOptions.
type Question struct {
	ID            string   `json:"_id,omitempty" yaml:"-"`
	QuizID        string   `json:"quiz_id" yaml:"-"`
	PromptText    string   `json:"question" yaml:"question" validate:"required"`
	AnswerOptions []string `json:"answers" yaml:"answers" validate:"min=1,dive,required"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer" validate:"required"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// HasOption reports whether answer is one of the question's options.
func (q Question) HasOption(answer string) bool {
	return slices.Contains(q.AnswerOptions, answer)
}

// IsCorrect reports whether answer matches the correct answer.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// User identifies the account making requests.
type User struct {
	Username string `json:"username"`
	Valid    bool   `json:"valid"`
}

// UserQuizzes splits a creator's quizzes by visibility. Both lists are newest first.
type UserQuizzes struct {
	PublicQuizzes  []Quiz `json:"public_quizzes"`
	PrivateQuizzes []Quiz `json:"private_quizzes"`
}

// All returns the public and private quizzes merged, newest first.
func (u UserQuizzes) All() []Quiz {
	all := make([]Quiz, 0, len(u.PublicQuizzes)+len(u.PrivateQuizzes))
	all = append(all, u.PublicQuizzes...)
	all = append(all, u.PrivateQuizzes...)
	slices.SortStableFunc(all, func(a, b Quiz) int {
		switch {
		case a.DateCreated > b.DateCreated:
			return -1
		case a.DateCreated < b.DateCreated:
			return 1
		}
		return 0
	})
	return all
}
