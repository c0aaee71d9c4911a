package service

import "errors"

var (
	// ErrQuestionNotFound signals a question id absent from the resolved
	// survey definition. A caller configuration error, never swallowed.
	ErrQuestionNotFound = errors.New("question not found in survey definition")

	// ErrDefinitionNotFound signals an explicitly requested survey type
	// with no matching definition. Not downgraded to the legacy fallback.
	ErrDefinitionNotFound = errors.New("survey type definition not found")

	// ErrAggregationFailed wraps failures from the submission or
	// definition sources. No partial results are returned.
	ErrAggregationFailed = errors.New("analytics aggregation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
