// Package web embeds the dashboard templates, stylesheet and page content.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html static/*.css content/*.md
var files embed.FS

// Raw HTML in content files is escaped: WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Templates parses every page template. Template names are the file names.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return tmpl, nil
}

// Static serves the embedded stylesheets.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}

// Markdown renders content/<name>.md to HTML.
func Markdown(name string) (template.HTML, error) {
	src, err := files.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", errors.Wrapf(err, "reading content %s", name)
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert(src, &buf); err != nil {
		return "", errors.Wrapf(err, "rendering content %s", name)
	}
	return template.HTML(buf.String()), nil
}
