package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure so the HTTP layer can pick a status code
// without inspecting message strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindExtraction
	KindEmbedding
	KindCompletion
	KindUpstream
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExtraction:
		return "extraction_error"
	case KindEmbedding:
		return "embedding_error"
	case KindCompletion:
		return "completion_error"
	case KindUpstream:
		return "upstream_error"
	case KindPersistence:
		return "persistence_error"
	}
	return "internal_error"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound deliberately covers both "does not exist" and "exists but is not
// yours". Ownership-scoped lookups never distinguish the two.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Extraction(message string, err error) *Error {
	return &Error{Kind: KindExtraction, Message: message, Err: err}
}

func Embedding(message string, err error) *Error {
	return &Error{Kind: KindEmbedding, Message: message, Err: err}
}

func Completion(message string, err error) *Error {
	return &Error{Kind: KindCompletion, Message: message, Err: err}
}

// Upstream marks a failure of a non-AI external service, such as the
// arXiv search API.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf returns the classification of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
