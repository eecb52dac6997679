package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uni_dashboard/metrics"
	"uni_dashboard/middleware"
	"uni_dashboard/models"
)

// AttendanceHandler serves the JSON attendance API. It keeps no state: the
// store comes from the subjects query parameter via middleware.QueryStore.
type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{}
}

// GetAttendance returns the decoded store.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	h.respond(c, http.StatusOK)
}

// CreateSubject adds a subject with no missed classes.
func (h *AttendanceHandler) CreateSubject(c *gin.Context) {
	var req models.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	err := middleware.GetStore(c).AddSubject(req.Name, *req.Total)
	metrics.ObserveOperation(metrics.OpAdd, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, http.StatusCreated)
}

// SetMissed updates the missed count of a subject. Out of range values are
// rejected, not clamped.
func (h *AttendanceHandler) SetMissed(c *gin.Context) {
	var req models.SetMissedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	err := middleware.GetStore(c).SetMissed(req.Name, *req.Missed)
	metrics.ObserveOperation(metrics.OpMissed, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, http.StatusOK)
}

// ClearSubjects removes every subject.
func (h *AttendanceHandler) ClearSubjects(c *gin.Context) {
	middleware.GetStore(c).ClearAll()
	metrics.ObserveOperation(metrics.OpClear, nil)
	h.respond(c, http.StatusOK)
}

func (h *AttendanceHandler) respond(c *gin.Context, code int) {
	c.JSON(code, models.NewAttendanceResponse(middleware.GetStore(c), middleware.GetNotice(c)))
}
