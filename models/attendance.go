package models

import (
	"net/url"

	"uni_dashboard/attendance"
)

type CreateSubjectRequest struct {
	Name  string `json:"name" form:"name" binding:"notblank,max=100"`
	Total *int   `json:"total" form:"total" binding:"required"`
}

type SetMissedRequest struct {
	Name   string `json:"name" form:"name" binding:"notblank"`
	Missed *int   `json:"missed" form:"missed" binding:"required"`
}

type SubjectResponse struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Missed     int     `json:"missed"`
	Attendance float64 `json:"attendance"`
}

type AttendanceResponse struct {
	Subjects   []SubjectResponse `json:"subjects"`
	Serialized string            `json:"serialized"`
	Query      string            `json:"query"`
	Notice     string            `json:"notice,omitempty"`
}

// NewAttendanceResponse describes the store and the query string that restores it.
func NewAttendanceResponse(store *attendance.Store, notice string) AttendanceResponse {
	subjects := make([]SubjectResponse, 0, store.Len())
	for _, s := range store.Subjects() {
		subjects = append(subjects, SubjectResponse{
			Name:       s.Name,
			Total:      s.Total,
			Missed:     s.Missed,
			Attendance: s.Percent(),
		})
	}

	serialized := store.Serialize()
	return AttendanceResponse{
		Subjects:   subjects,
		Serialized: serialized,
		Query:      url.Values{attendance.QueryParam: {serialized}}.Encode(),
		Notice:     notice,
	}
}
