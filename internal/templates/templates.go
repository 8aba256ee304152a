// Package templates embeds the HTML pages rendered by the route layer and the
// degraded page served by the serverless adapter.
package templates

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed html/*.html
var files embed.FS

// Page names
const (
	IndexPage    = "index.html"
	AdminPage    = "admin.html"
	DegradedPage = "degraded.html"
)

var funcs = template.FuncMap{
	"availability": func(v string) string {
		if v == "" {
			return "Not set"
		}
		return "Available"
	},
	"orNotSet": func(v string) string {
		if v == "" {
			return "Not set"
		}
		return v
	},
	"initials": func(name string) string {
		var b strings.Builder
		for _, part := range strings.Fields(name) {
			r, _ := utf8.DecodeRuneInString(part)
			b.WriteRune(unicode.ToUpper(r))
		}
		return b.String()
	},
}

var pages = template.Must(template.New("pages").Funcs(funcs).ParseFS(files, "html/*.html"))

// Pages returns the parsed page set for gin's HTML renderer
func Pages() *template.Template {
	return pages
}

// DegradedStatus is the environment check shown on the degraded page
type DegradedStatus struct {
	Path                 string
	ProjectID            string
	AppIDAvailable       bool
	APIKeyAvailable      bool
	CredentialsAvailable bool
	Reason               string
}

// RenderDegraded writes the degraded-mode page
func RenderDegraded(w io.Writer, status DegradedStatus) error {
	return pages.ExecuteTemplate(w, DegradedPage, status)
}
