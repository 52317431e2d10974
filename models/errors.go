package models

import "errors"

// Sentinel errors shared by both store backends. Callers check these with
// errors.Is; stores may wrap them with additional context.
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("person name already exists")
)
