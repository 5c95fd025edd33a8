package response

import "net/http"

type Error string

type RestError struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

const (
	ErrInvalidInput  = Error("INVALID_INPUT")
	ErrNotFound      = Error("NOT_FOUND")
	ErrInternalError = Error("INTERNAL_ERROR")
)

var Errors = map[Error]RestError{
	ErrInvalidInput: {
		Code:  http.StatusBadRequest,
		Title: string(ErrInvalidInput),
	},
	ErrNotFound: {
		Code:  http.StatusNotFound,
		Title: string(ErrNotFound),
	},
	ErrInternalError: {
		Code:  http.StatusInternalServerError,
		Title: string(ErrInternalError),
	},
}
