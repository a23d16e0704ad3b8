package errprocess

import (
	"errors"
	"net/http"

	"lifetube/pkg/config"
	"lifetube/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for the transport boundary
type Kind int

const (
	// Internal external dependency failure, maps to 500
	Internal Kind = iota
	// Validation bad request input, maps to 400
	Validation
	// Unauthorized ownership or identity mismatch, maps to 403
	Unauthorized
	// NotFound missing record, maps to 404
	NotFound
)

// Error carries a kind, a client-facing message and the underlying cause
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap expose the cause for errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// New create an error with no cause
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap create an error around a cause; internal causes are logged here
func Wrap(kind Kind, msg string, cause error) *Error {
	e := &Error{Kind: kind, Msg: msg, Err: cause}
	if kind == Internal {
		logger.Log.Error(e.Error())
	}
	return e
}

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return &Error{Kind: Internal, Msg: errMsg}
}

// StatusCode map an error kind to its HTTP status
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case Validation:
			return http.StatusBadRequest
		case Unauthorized:
			return http.StatusForbidden
		case NotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// Reply single boundary translator, every handler error funnels through here.
// The underlying cause is only exposed outside production.
func Reply(c *fiber.Ctx, err error) error {
	status := StatusCode(err)

	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: Internal, Msg: "Server error", Err: err}
	}

	body := fiber.Map{"error": e.Msg}
	if status == http.StatusInternalServerError && !config.IsProduction() && e.Err != nil {
		body["message"] = e.Err.Error()
	}
	return c.Status(status).JSON(body)
}
