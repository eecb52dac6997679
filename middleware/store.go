package middleware

import (
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"uni_dashboard/attendance"
	"uni_dashboard/metrics"
)

// DecodeNotice is shown when the URL carries a store that cannot be decoded.
const DecodeNotice = "Error decoding subjects from URL. Using empty subjects."

const (
	storeKey  = "attendanceStore"
	noticeKey = "attendanceNotice"

	sessionSubjectsKey = attendance.QueryParam
)

// QueryStore builds the request's attendance store from the subjects query
// parameter only.
func QueryStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := attendance.NewStore()
		loadQuery(c, store)
		c.Set(storeKey, store)
		c.Next()
	}
}

// SessionStore builds the request's attendance store from the session and
// replaces it with the subjects query parameter when present.
// It must run after sessions.Sessions.
func SessionStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := attendance.NewStore()

		session := sessions.Default(c)
		if raw, ok := session.Get(sessionSubjectsKey).(string); ok {
			if err := store.LoadFromSerialized(raw); err != nil {
				slog.Warn("discarding session subjects", "error", err, "request_id", GetRequestID(c))
				metrics.ObserveDecodeError(metrics.SourceSession)
			}
		}
		loadQuery(c, store)

		c.Set(storeKey, store)
		c.Next()
	}
}

func loadQuery(c *gin.Context, store *attendance.Store) {
	raw, ok := c.GetQuery(attendance.QueryParam)
	if !ok {
		return
	}
	if err := store.LoadFromSerialized(raw); err != nil {
		slog.Warn("decoding subjects from url", "error", err, "request_id", GetRequestID(c))
		metrics.ObserveDecodeError(metrics.SourceQuery)
		c.Set(noticeKey, DecodeNotice)
	}
}

// GetStore returns the store set by QueryStore or SessionStore.
func GetStore(c *gin.Context) *attendance.Store {
	if store, ok := c.Get(storeKey); ok {
		return store.(*attendance.Store)
	}
	return attendance.NewStore()
}

// GetNotice returns the decode notice of the request, if any.
func GetNotice(c *gin.Context) string {
	return c.GetString(noticeKey)
}

// SaveStore mirrors the store into the session. The mirror is best effort: a
// store whose encoded cookie exceeds the securecookie limit (4096 bytes) is
// not saved and the error is returned, while the subjects query parameter
// still carries the full state.
func SaveStore(c *gin.Context, store *attendance.Store) error {
	session := sessions.Default(c)
	session.Set(sessionSubjectsKey, store.Serialize())
	return errors.Wrap(session.Save(), "saving session")
}
