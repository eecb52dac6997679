// Package catalog holds the static content of the dashboard: navigation
// sections and the resource pages shown in embedded frames.
package catalog

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Section slugs.
const (
	SectionHome       = "home"
	SectionUniversity = "university"
	SectionClubs      = "clubs"
	SectionAttendance = "attendance"
)

type Section struct {
	Slug  string
	Title string
	Path  string
}

// Sections are listed in navigation order.
var Sections = []Section{
	{Slug: SectionHome, Title: "Home", Path: "/"},
	{Slug: SectionUniversity, Title: "University Resources", Path: "/resources/university"},
	{Slug: SectionClubs, Title: "Clubs Resources", Path: "/resources/clubs"},
	{Slug: SectionAttendance, Title: "Attendance Tracker", Path: "/attendance"},
}

// FindSection returns the section with the given slug.
func FindSection(slug string) (Section, bool) {
	for _, s := range Sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

type Resource struct {
	Title string `mapstructure:"title" json:"title"`
	URL   string `mapstructure:"url" json:"url"`
}

type Catalog struct {
	University  []Resource
	Clubs       []Resource
	FrameWidth  int
	FrameHeight int
}

func Default() Catalog {
	return Catalog{
		University: []Resource{
			{Title: "Library Resources", URL: "http://webopac.bits-dubai.ac.ae/AutoLib/index.jsp"},
			{Title: "Courses & LMS", URL: "https://lms.bitspilanidubai.ae/login/index.php"},
			{Title: "BITS ERP", URL: "https://erp.bits-pilani.ac.in/"},
		},
		Clubs: []Resource{
			{Title: "GDSC Resources", URL: "https://gdscbpdc.github.io/"},
			{Title: "ACM Resources", URL: "https://openlib-cs.acmbpdc.org/"},
			{Title: "Ahmed Thahir's Notes", URL: "https://uni-notes.netlify.app/"},
		},
		FrameWidth:  1000,
		FrameHeight: 600,
	}
}

// Resources returns the resource list of a resources section.
func (c Catalog) Resources(slug string) ([]Resource, bool) {
	switch slug {
	case SectionUniversity:
		return c.University, true
	case SectionClubs:
		return c.Clubs, true
	}
	return nil, false
}

// Validate checks that every resource has a title and an absolute http(s) URL.
func (c Catalog) Validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return errors.Errorf("invalid frame size %dx%d", c.FrameWidth, c.FrameHeight)
	}
	for slug, list := range map[string][]Resource{SectionUniversity: c.University, SectionClubs: c.Clubs} {
		for i, r := range list {
			if strings.TrimSpace(r.Title) == "" {
				return errors.Errorf("%s resource #%d: title is required", slug, i+1)
			}
			if err := validateURL(r.URL); err != nil {
				return errors.Wrapf(err, "%s resource %q", slug, r.Title)
			}
		}
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "parsing url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return errors.Errorf("url %q has no host", raw)
	}
	return nil
}
