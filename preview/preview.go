// Package preview renders converted Markdown to HTML for display next to the editor.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Options configures the HTML renderer.
type Options struct {
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// Unsafe lets raw HTML in the Markdown through to the output.
	Unsafe bool
}

// Renderer turns Markdown into HTML. It is stateless and safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// Heading is a heading found in a Markdown document.
type Heading struct {
	Level int
	Text  string
}

// New creates a Renderer with GFM extensions enabled.
func New(opts Options) *Renderer {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// HTML renders markdown to an HTML fragment.
func (r *Renderer) HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// Headings lists the ATX and setext headings of markdown in document order.
func (r *Renderer) Headings(markdown string) []Heading {
	source := []byte(markdown)
	root := r.engine.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  strings.TrimSpace(inlineText(heading, source)),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.WriteString(inlineText(child, source))
	}
	return sb.String()
}
