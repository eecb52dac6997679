package attendance

// Record is the attendance of a single subject.
type Record struct {
	Total  int `json:"total"`
	Missed int `json:"missed"`
}

// Percent returns the share of attended classes, see ComputeAttendance.
func (r Record) Percent() float64 {
	return ComputeAttendance(r)
}

// Valid reports whether 0 <= Missed <= Total and Total >= 1.
func (r Record) Valid() bool {
	return r.Total >= 1 && r.Missed >= 0 && r.Missed <= r.Total
}

// ComputeAttendance returns (total - missed) / total * 100.
// Records decoded from a URL are not validated, so a non-positive total yields 0.
func ComputeAttendance(r Record) float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Total-r.Missed) / float64(r.Total) * 100
}

// Subject is a named record, as listed by Store.Subjects.
type Subject struct {
	Name string
	Record
}
