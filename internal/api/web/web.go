// Package web holds the HTML templates of the site.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in descriptions is not passed through; WithUnsafe is never set.
var markdownRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"price":    FormatPrice,
	}
}

func Markdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}

	return template.HTML(buf.String())
}

// FormatPrice prints whole prices without decimals and groups thousands.
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	whole, frac := s[:len(s)-3], s[len(s)-3:]
	if frac == ".00" {
		frac = ""
	}

	neg := ""
	if whole != "" && whole[0] == '-' {
		neg, whole = "-", whole[1:]
	}

	var grouped []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	return neg + string(grouped) + frac
}
