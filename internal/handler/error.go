package handler

import (
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/domain"
)

// debugErrors controls whether server-error responses carry the underlying
// error text. Enabled from main in development only.
var debugErrors bool

// ExposeErrorDetails toggles inclusion of raw error text in 5xx responses.
func ExposeErrorDetails(enable bool) {
	debugErrors = enable
}

// ErrorResponse maps a domain error to its HTTP status and writes the
// failure envelope. Clients get the generic French message from
// domain.ErrorMessage; the raw error only appears in development.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	op := domain.ErrorOp(err)

	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, op, status)

	env := Envelope{Success: false, Message: message}
	if debugErrors && status >= 500 {
		env.Error = err.Error()
	}
	writeJSON(w, status, env)
}

// PartialFailureResponse handles the notification-failed case: the
// submission was accepted and its tracking reference must reach the client,
// but delivery did not fully succeed. The envelope carries success=false
// with the data attached, status 500, matching the established contract.
func PartialFailureResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, data interface{}) {
	message := domain.ErrorMessage(err)

	logError(logger, r, err, domain.ENOTIFY, domain.ErrorOp(err), http.StatusInternalServerError)

	writeJSON(w, http.StatusInternalServerError, Envelope{Success: false, Message: message, Data: data})
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized // 401
	case domain.EFORBIDDEN:
		return http.StatusForbidden // 403
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge // 413
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests // 429
	case domain.ENOTIFY:
		return http.StatusInternalServerError // 500
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// logError logs with a level matching the status class: 5xx as errors,
// 4xx as info.
func logError(logger *slog.Logger, r *http.Request, err error, code, op string, status int) {
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("server error", attrs...)
	} else if status >= 400 {
		logger.Info("client error", attrs...)
	}
}
