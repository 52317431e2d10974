package handlers

import (
	"fmt"
	"regexp"
	"strings"
)

// Request bodies accepted by the API. Kept separate from the storage models
// so the wire shape cannot drift with the schema.

// PersonInput is the body of POST /persons.
type PersonInput struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

// PostInput is the body of POST /posts.
type PostInput struct {
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
}

// ValidationError describes a rejected input field. It is produced before
// any store operation runs and rendered as a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// person names are plain letters, bounded in length
var nameRe = regexp.MustCompile(`^[a-zA-Z]{3,40}$`)

// ValidateName checks the shape shared by the create body and the lookup
// path parameter.
func ValidateName(name string) *ValidationError {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !nameRe.MatchString(name) {
		return &ValidationError{Field: "name", Message: "must be 3-40 letters"}
	}
	return nil
}

// ValidatePersonInput checks a POST /persons body.
func ValidatePersonInput(in PersonInput) *ValidationError {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	if in.Age != nil && *in.Age < 0 {
		return &ValidationError{Field: "age", Message: "must not be negative"}
	}
	return nil
}

// ValidatePostInput checks a POST /posts body.
func ValidatePostInput(in PostInput) *ValidationError {
	if strings.TrimSpace(in.AuthorName) == "" {
		return &ValidationError{Field: "author_name", Message: "is required"}
	}
	if strings.TrimSpace(in.Text) == "" {
		return &ValidationError{Field: "text", Message: "is required"}
	}
	return nil
}
