package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour for drawer content.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// NewMarkdownRenderer creates a renderer for the given glamour style ("auto"
// picks one from the terminal) and word-wrap width.
func NewMarkdownRenderer(style string, width int) (*MarkdownRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	return &MarkdownRenderer{
		renderer: renderer,
		style:    style,
		width:    width,
	}, nil
}

// Render renders markdown to styled terminal output without surrounding blank lines.
func (mr *MarkdownRenderer) Render(content string) (string, error) {
	out, err := mr.renderer.Render(content)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// UpdateWidth recreates the renderer when the wrap width changes.
// It reports whether the width changed.
func (mr *MarkdownRenderer) UpdateWidth(width int) (bool, error) {
	if width == mr.width {
		return false, nil
	}

	next, err := NewMarkdownRenderer(mr.style, width)
	if err != nil {
		return false, err
	}

	mr.renderer = next.renderer
	mr.width = width
	return true, nil
}

// Width returns the current wrap width.
func (mr *MarkdownRenderer) Width() int {
	return mr.width
}

// personMarkdown is the drawer document for a person.
func personMarkdown(p Person, words string) string {
	return fmt.Sprintf("**%s** `%s`\n\n> %s\n\n_%s words_\n", p.Name, p.ID.String(), p.Quote, words)
}
