package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"uni_dashboard/attendance"
	"uni_dashboard/catalog"
	"uni_dashboard/config"
	"uni_dashboard/metrics"
	"uni_dashboard/middleware"
	"uni_dashboard/models"
	"uni_dashboard/web"
)

// Flash kinds, also used as CSS modifiers.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const (
	msgInvalidSubject = "Subject already exists or invalid name."
	msgInvalidTotal   = "Total number of classes must be at least 1."
	msgInvalidMissed  = "Missed classes must be a whole number."
	msgUnknownSubject = "Subject not found."
	msgMissedRange    = "Missed classes must be between 0 and the total number of classes."
)

const (
	addSubjectPath = "/attendance/subjects"
	setMissedPath  = "/attendance/missed"
	clearPath      = "/attendance/clear"
)

type navItem struct {
	Title  string
	URL    string
	Active bool
}

type flash struct {
	Kind    string
	Message string
}

type pageData struct {
	AppTitle string
	Author   string
	Nav      []navItem
	Flashes  []flash

	// home
	Content       template.HTML
	AttendanceURL string

	// resources
	Heading     string
	Note        string
	Resources   []catalog.Resource
	FrameWidth  int
	FrameHeight int

	// attendance
	Subjects     []attendance.Subject
	DefaultTotal int
	AddURL       string
	MissedURL    string
	ClearURL     string
}

// PageHandler renders the dashboard pages. The attendance store of a request
// is set up by middleware.SessionStore; every page keeps the subjects query
// parameter equal to the serialized store.
type PageHandler struct {
	cfg  *config.Config
	home template.HTML
}

func NewPageHandler(cfg *config.Config) (*PageHandler, error) {
	home, err := web.Markdown("home")
	if err != nil {
		return nil, errors.Wrap(err, "loading home content")
	}
	return &PageHandler{cfg: cfg, home: home}, nil
}

func (h *PageHandler) Home(c *gin.Context) {
	if h.redirectCanonical(c) {
		return
	}
	h.render(c, "home.html", catalog.SectionHome, pageData{
		Content:       h.home,
		AttendanceURL: withSubjects("/attendance", middleware.GetStore(c)),
	})
}

// Resources renders the resource page of a resources section.
func (h *PageHandler) Resources(slug string) gin.HandlerFunc {
	section, _ := catalog.FindSection(slug)
	resources, _ := h.cfg.Catalog.Resources(slug)

	var note string
	if slug == catalog.SectionClubs {
		note = "Feel free to contribute"
	}

	return func(c *gin.Context) {
		if h.redirectCanonical(c) {
			return
		}
		h.render(c, "resources.html", slug, pageData{
			Heading:     section.Title,
			Note:        note,
			Resources:   resources,
			FrameWidth:  h.cfg.Catalog.FrameWidth,
			FrameHeight: h.cfg.Catalog.FrameHeight,
		})
	}
}

func (h *PageHandler) Attendance(c *gin.Context) {
	if h.redirectCanonical(c) {
		return
	}
	store := middleware.GetStore(c)
	h.render(c, "attendance.html", catalog.SectionAttendance, pageData{
		Subjects:     store.Subjects(),
		DefaultTotal: h.cfg.DefaultTotal,
		AddURL:       withSubjects(addSubjectPath, store),
		MissedURL:    withSubjects(setMissedPath, store),
		ClearURL:     withSubjects(clearPath, store),
	})
}

func (h *PageHandler) AddSubject(c *gin.Context) {
	session := sessions.Default(c)
	store := middleware.GetStore(c)

	var req models.CreateSubjectRequest
	if err := c.ShouldBind(&req); err != nil {
		session.AddFlash(msgInvalidSubject, FlashError)
		h.redirectAttendance(c, store)
		return
	}

	err := store.AddSubject(req.Name, *req.Total)
	metrics.ObserveOperation(metrics.OpAdd, err)
	switch {
	case errors.Is(err, attendance.ErrInvalidTotal):
		session.AddFlash(msgInvalidTotal, FlashError)
	case err != nil:
		session.AddFlash(msgInvalidSubject, FlashError)
	default:
		session.AddFlash(fmt.Sprintf("Added %s with %d total classes.", strings.TrimSpace(req.Name), *req.Total), FlashSuccess)
	}
	h.redirectAttendance(c, store)
}

// SetMissed clamps the submitted value into [0, total] like the number input
// does, then updates the store.
func (h *PageHandler) SetMissed(c *gin.Context) {
	session := sessions.Default(c)
	store := middleware.GetStore(c)

	var req models.SetMissedRequest
	if err := c.ShouldBind(&req); err != nil {
		session.AddFlash(msgInvalidMissed, FlashError)
		h.redirectAttendance(c, store)
		return
	}

	err := store.SetMissed(req.Name, store.Clamp(req.Name, *req.Missed))
	metrics.ObserveOperation(metrics.OpMissed, err)
	var rangeErr *attendance.RangeError
	switch {
	case errors.Is(err, attendance.ErrUnknownSubject):
		session.AddFlash(msgUnknownSubject, FlashError)
	case errors.As(err, &rangeErr):
		// only a decoded record with a negative total gets here
		session.AddFlash(msgMissedRange, FlashError)
	case err != nil:
		session.AddFlash(msgInvalidMissed, FlashError)
	}
	h.redirectAttendance(c, store)
}

func (h *PageHandler) ClearAll(c *gin.Context) {
	store := middleware.GetStore(c)
	store.ClearAll()
	metrics.ObserveOperation(metrics.OpClear, nil)
	h.redirectAttendance(c, store)
}

// redirectCanonical redirects a page request whose subjects parameter is
// missing or differs from the serialized store.
func (h *PageHandler) redirectCanonical(c *gin.Context) bool {
	store := middleware.GetStore(c)
	if raw, ok := c.GetQuery(attendance.QueryParam); ok && raw == store.Serialize() {
		return false
	}

	h.saveAndRedirect(c, http.StatusFound, withSubjects(c.Request.URL.Path, store), store)
	return true
}

func (h *PageHandler) redirectAttendance(c *gin.Context, store *attendance.Store) {
	h.saveAndRedirect(c, http.StatusSeeOther, withSubjects("/attendance", store), store)
}

// saveAndRedirect mirrors the store into the session and redirects. A decode
// notice is kept as a flash for the next page.
func (h *PageHandler) saveAndRedirect(c *gin.Context, code int, location string, store *attendance.Store) {
	if notice := middleware.GetNotice(c); notice != "" {
		sessions.Default(c).AddFlash(notice, FlashError)
	}
	if err := middleware.SaveStore(c, store); err != nil {
		slog.Warn("session not saved, state kept in url", "error", err, "request_id", middleware.GetRequestID(c))
	}
	c.Redirect(code, location)
}

func (h *PageHandler) render(c *gin.Context, name, active string, data pageData) {
	store := middleware.GetStore(c)
	session := sessions.Default(c)

	data.AppTitle = h.cfg.AppTitle
	data.Author = h.cfg.Author
	data.Flashes = popFlashes(session)
	for _, s := range catalog.Sections {
		data.Nav = append(data.Nav, navItem{
			Title:  s.Title,
			URL:    withSubjects(s.Path, store),
			Active: s.Slug == active,
		})
	}

	if err := middleware.SaveStore(c, store); err != nil {
		slog.Warn("session not saved, state kept in url", "error", err, "request_id", middleware.GetRequestID(c))
	}
	c.HTML(http.StatusOK, name, data)
}

func popFlashes(session sessions.Session) []flash {
	var flashes []flash
	for _, kind := range []string{FlashError, FlashSuccess, FlashInfo} {
		for _, msg := range session.Flashes(kind) {
			if s, ok := msg.(string); ok {
				flashes = append(flashes, flash{Kind: kind, Message: s})
			}
		}
	}
	return flashes
}

// withSubjects returns path with the serialized store as its subjects parameter.
func withSubjects(path string, store *attendance.Store) string {
	return path + "?" + url.Values{attendance.QueryParam: {store.Serialize()}}.Encode()
}
