package web

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"home.html", "resources.html", "attendance.html", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestMarkdown(t *testing.T) {
	html, err := Markdown("home")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<li>Track attendance for your subjects</li>")

	_, err = Markdown("missing")
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("style.css")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".sidebar")
}
