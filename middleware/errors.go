package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"uni_dashboard/attendance"
	"uni_dashboard/models"
)

// ErrorHandler turns the last error added with c.Error into a JSON response,
// unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		ginErr := c.Errors.Last()
		code, body := errorResponse(ginErr)
		if code >= http.StatusInternalServerError {
			slog.Error("internal error", "error", ginErr.Err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
		}
		c.JSON(code, body)
	}
}

func errorResponse(ginErr *gin.Error) (int, gin.H) {
	err := ginErr.Err

	var (
		verrs      validator.ValidationErrors
		invalidErr *attendance.InvalidSubjectError
		rangeErr   *attendance.RangeError
	)
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, gin.H{"error": "invalid request", "fields": models.FieldErrors(verrs)}
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, gin.H{"error": "invalid request body"}
	case errors.As(err, &invalidErr):
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, attendance.ErrUnknownSubject):
			code = http.StatusNotFound
		case errors.Is(err, attendance.ErrDuplicateSubject):
			code = http.StatusConflict
		}
		return code, gin.H{"error": invalidErr.Error()}
	case errors.As(err, &rangeErr):
		return http.StatusBadRequest, gin.H{"error": rangeErr.Error(), "min": 0, "max": rangeErr.Total}
	default:
		return http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)}
	}
}
