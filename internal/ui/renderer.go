// Package ui writes completions to the terminal, either as raw text or as
// rendered markdown.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/llmpipe/llmpipe/internal/text"
)

const fallbackWidth = 80

var langLabelStyle = lipgloss.NewStyle().Faint(true)

// Renderer writes a completion to out. In pretty mode content is rendered
// as markdown with word wrap to the terminal width; otherwise it is written
// verbatim with a trailing newline.
type Renderer struct {
	out    io.Writer
	pretty bool
	width  int
}

// NewRenderer builds a renderer for out. The width is taken from the
// terminal when stdout is one, so piped output is unaffected by wrapping.
func NewRenderer(out io.Writer, pretty bool) *Renderer {
	width := fallbackWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &Renderer{out: out, pretty: pretty, width: width}
}

// Render writes a full completion.
func (r *Renderer) Render(content string) error {
	if !r.pretty {
		_, err := fmt.Fprintln(r.out, content)
		return err
	}
	return r.renderMarkdown(content)
}

// RenderCode writes an extracted code block. Pretty mode re-fences the
// block so the markdown renderer applies syntax highlighting, with a faint
// language label above it when the fence carried one.
func (r *Renderer) RenderCode(block text.CodeBlock) error {
	if !r.pretty {
		_, err := fmt.Fprintln(r.out, block.Text)
		return err
	}
	if block.Lang != "" {
		if _, err := fmt.Fprintln(r.out, langLabelStyle.Render("· "+block.Lang)); err != nil {
			return err
		}
	}
	return r.renderMarkdown("```" + block.Lang + "\n" + block.Text + "\n```")
}

func (r *Renderer) renderMarkdown(content string) error {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return fmt.Errorf("building markdown renderer: %w", err)
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprintln(r.out, strings.TrimRight(rendered, "\n"))
	return err
}
