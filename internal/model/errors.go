package model

import "errors"

var (
	// ErrNotFound signals an unknown property id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a request or record that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream signals a failed or unparseable language-model call.
	ErrUpstream = errors.New("upstream error")
	// ErrInternal signals an unexpected storage failure.
	ErrInternal = errors.New("internal error")
)
