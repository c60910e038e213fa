package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrEmptyDocument   = errors.New("catalog document contains no pages")
	ErrSourceNotFound  = errors.New("catalog source document not found")
	ErrInvalidDocument = errors.New("catalog document is not valid JSON")
)
