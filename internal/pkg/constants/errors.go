package constants

import "net/http"

// CodedError is an error that carries the HTTP status it should be reported with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound      = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized    = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrTaxonomyLookup  = NewCodedError("taxonomy lookup failed", http.StatusUnprocessableEntity)
	ErrMalformedRecord = NewCodedError("malformed catalog record", http.StatusUnprocessableEntity)
	ErrEmptyCatalog    = NewCodedError("catalog contains no modification records", http.StatusBadRequest)
)
