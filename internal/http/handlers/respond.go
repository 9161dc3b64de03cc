package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx answer. Message is always present; the rest only when
// there is something to say.
type ErrorResponse struct {
	Message   string       `json:"message"`
	Error     string       `json:"error,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get("request_id")

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, body ErrorResponse) {
	body.RequestID = requestIDFrom(ctx)
	ctx.AbortWithStatusJSON(status, body)
}

func RespondBadRequest(ctx *gin.Context, message string, fields []FieldError) {
	RespondError(ctx, http.StatusBadRequest, ErrorResponse{Message: message, Fields: fields})
}

func RespondConflict(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusConflict, ErrorResponse{Message: message})
}

// RespondInternal answers 500. With expose set the raw error text goes back to the caller, which is
// what existing clients of this API expect.
func RespondInternal(ctx *gin.Context, message string, err error, expose bool) {
	body := ErrorResponse{Message: message}

	if expose && err != nil {
		body.Error = err.Error()
	}

	RespondError(ctx, http.StatusInternalServerError, body)
}
