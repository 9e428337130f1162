package server

import (
	"fmt"

	"github.com/google/uuid"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindList
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "bool"
	case kindList:
		return "list"
	}
	return fmt.Sprintf("fieldKind(%d)", int(k))
}

type requestField struct {
	name string
	kind fieldKind
}

var (
	createQuizFields = []requestField{
		{"title", kindString},
		{"description", kindString},
		{"creator_username", kindString},
		{"is_public", kindBool},
	}
	quizFields = append(createQuizFields[:len(createQuizFields):len(createQuizFields)],
		requestField{"date_created", kindString},
		requestField{"_id", kindString},
	)
	creatorFields = []requestField{
		{"creator_username", kindString},
	}
	quizIDFields = []requestField{
		{"quiz_id", kindString},
	}
	addQuestionFields = []requestField{
		{"quiz_id", kindString},
		{"question", kindString},
		{"answers", kindList},
		{"correct_answer", kindString},
		{"explanation", kindString},
	}
	questionFields = append(addQuestionFields[:len(addQuestionFields):len(addQuestionFields)],
		requestField{"_id", kindString},
	)
)

const msgFailedToReceive = "Failed to receive request"

// validateRequestObject checks that body is a JSON object with exactly the given fields and
// types. It returns the message for the first problem found, or "" when body is valid.
func validateRequestObject(body any, fields []requestField) string {
	object, ok := body.(map[string]any)
	if !ok {
		return msgFailedToReceive
	}
	if len(object) != len(fields) {
		return fmt.Sprintf("Request needs %d fields", len(fields))
	}
	for _, field := range fields {
		value, ok := object[field.name]
		if !ok {
			return fmt.Sprintf("Request missing field '%s'", field.name)
		}
		if !field.kind.matches(value) {
			return fmt.Sprintf("Field '%s' supposed to be a %s", field.name, field.kind)
		}
	}
	return ""
}

func (k fieldKind) matches(value any) bool {
	switch k {
	case kindString:
		_, ok := value.(string)
		return ok
	case kindBool:
		_, ok := value.(bool)
		return ok
	case kindList:
		items, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

// parseID returns the canonical form of a record id, or false if it is not a UUID.
func parseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func invalidFieldMessage(name string) string {
	return fmt.Sprintf("Field '%s' is invalid", name)
}
