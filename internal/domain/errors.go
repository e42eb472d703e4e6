package domain

import "errors"

var (
	// ErrAttemptNotFound is returned when an attempt ID does not map to a live attempt.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrAttemptComplete is returned when an operation targets a finished attempt.
	ErrAttemptComplete = errors.New("attempt already complete")
	// ErrCooldownActive indicates the company is still inside a cooldown window.
	ErrCooldownActive = errors.New("cooldown active for company")
	// ErrEmptyQuestionSet indicates the catalog could not supply any questions.
	ErrEmptyQuestionSet = errors.New("question set is empty")
	// ErrCatalogUnavailable indicates the question catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("question catalog unavailable")
	// ErrMissingPrerequisite indicates resume or package data has not been provided yet.
	ErrMissingPrerequisite = errors.New("missing prerequisite step")
)
