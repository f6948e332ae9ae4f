package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto" or a style file path
	Width int    // word wrap column, 0 keeps glamour's default
}

// NewGlamourRenderer returns a renderer that picks its style from the
// terminal background. Pass tty=false to get the plain "notty" style.
func NewGlamourRenderer(tty bool) *GlamourRenderer {
	if !tty {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Anything else, or a
// rendering failure, yields the content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
