package jwt

import "net/http"

type Error string

type JWTError struct {
	Code int
	Msg  string `json:"msg"`
}

const (
	ErrUnAuthorized = Error("UNAUTHORIZED")
	ErrForbidden    = Error("FORBIDDEN")
)

var Errors = map[Error]*JWTError{
	ErrUnAuthorized: {
		Code: http.StatusUnauthorized,
		Msg:  "Unauthorized",
	},
	ErrForbidden: {
		Code: http.StatusForbidden,
		Msg:  "Forbidden",
	},
}
