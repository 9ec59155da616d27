package apperrors

import "net/http"

// Factories and predefined values for the errors the console actually
// returns. Messages are part of the wire contract with the frontend.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrConflict converts a storage constraint violation into a 409.
func ErrConflict(err error, message string) *AppError {
	return Wrap(err, CodeConflict, "resource", message, http.StatusConflict)
}

// ErrUnauthorized - generic 401 with a caller-supplied message.
func ErrUnauthorized(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

// ErrInvalidCredentials - wrong email or password. Deliberately the same
// message for both cases so the response does not leak which one failed.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrPasswordRequired - account has no stored password and no social flag.
var ErrPasswordRequired = New(
	CodeInvalidCredentials,
	"auth",
	"Password required for this account",
	http.StatusUnauthorized,
)

// ErrAdminRequired - valid identity that is not the designated admin.
var ErrAdminRequired = New(
	CodeForbidden,
	"auth",
	"Access denied. Admin privileges required.",
	http.StatusForbidden,
)

// ErrTokenInvalid - missing, malformed or badly signed token.
var ErrTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid authentication token",
	http.StatusUnauthorized,
)

// ErrTokenExpired - the token was valid once.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Authentication token expired",
	http.StatusUnauthorized,
)

// ErrUserGone - token verified but the subject row no longer exists.
// A deleted account invalidates its outstanding tokens immediately.
var ErrUserGone = New(
	CodeUnauthorized,
	"auth",
	"User no longer exists",
	http.StatusUnauthorized,
)
