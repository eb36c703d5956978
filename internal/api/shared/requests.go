package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldProblem describes a single validation failure in a machine-readable
// form: the offending field (by its JSON name) and what is wrong with it.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidator returns a validator configured to report field names by their
// JSON tag rather than the Go struct field name, so that validation problems
// reference the wire-level names clients actually sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidationProblems converts a validator error into a list of per-field
// problems. Errors that are not validator.ValidationErrors produce a single
// problem with an empty field name.
func ValidationProblems(err error) []FieldProblem {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldProblem{{Message: err.Error()}}
	}

	problems := make([]FieldProblem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, FieldProblem{
			Field:   fe.Field(),
			Message: problemMessage(fe),
		})
	}
	return problems
}

// problemMessage maps a validator field error to a client-facing description.
func problemMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
