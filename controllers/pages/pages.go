package pageController

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"price": func(cents int64) string { return fmt.Sprintf("$%d.%02d", cents/100, cents%100) },
			"step":  func(i int) int { return i + 1 },
		}).
		ParseFS(templatesFS, "templates/*.html"),
)

// render buffers the template output so a template error never reaches the
// client as half a page.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func renderNotFound(w http.ResponseWriter) {
	render(w, http.StatusNotFound, "notfound.html", nil)
}
