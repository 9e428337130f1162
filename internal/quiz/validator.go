package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError carries the translated messages of a failed validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.Message()
}

// Message joins the messages for display.
func (e *ValidationError) Message() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// Validator checks quizzes and questions before they are sent or stored.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateCorrectAnswer, Question{})
	if err := validate.RegisterTranslation("answer_option", trans, func(ut ut.Translator) error {
		return ut.Add("answer_option", "{0} must be one of the answers", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("answer_option", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register answer_option translation: %w", err)
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

func validateCorrectAnswer(sl validator.StructLevel) {
	question := sl.Current().Interface().(Question)
	if question.CorrectAnswer == "" {
		return
	}
	if !question.HasOption(question.CorrectAnswer) {
		sl.ReportError(question.CorrectAnswer, "correct_answer", "CorrectAnswer", "answer_option", "")
	}
}

func (v *Validator) ValidateQuiz(quiz Quiz) error {
	return v.check(quiz)
}

func (v *Validator) ValidateQuestion(question Question) error {
	return v.check(question)
}

func (v *Validator) check(value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	errorMsgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, e.Translate(v.translator))
	}
	return &ValidationError{Messages: errorMsgs}
}
