package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/delta-markdown-converter/converter"
)

func TestHTML(t *testing.T) {
	r := New(Options{})

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading", "# Notes\n", "<h1>Notes</h1>\n"},
		{"bold", "**x**", "<p><strong>x</strong></p>\n"},
		{"italic", "*x*", "<p><em>x</em></p>\n"},
		{"code block", "```\nfmt.Println()\n```", "<pre><code>fmt.Println()\n</code></pre>\n"},
		{"raw html is omitted", "<b>x</b>\n", "<p><!-- raw HTML omitted -->x<!-- raw HTML omitted --></p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.HTML(tt.markdown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, html)
		})
	}
}

func TestHTMLUnsafe(t *testing.T) {
	html, err := New(Options{Unsafe: true}).HTML("<b>x</b>\n")
	require.NoError(t, err)
	assert.Equal(t, "<p><b>x</b></p>\n", html)
}

func TestHeadingsFromConvertedDelta(t *testing.T) {
	md, err := converter.ToMarkdown(`{"ops":[
		{"insert":"Plan"},{"insert":"\n","attributes":{"header":1}},
		{"insert":"Some text\nDetails "},{"insert":"here","attributes":{"bold":true}},
		{"insert":"\n","attributes":{"header":3}},
		{"insert":"Too deep"},{"insert":"\n","attributes":{"header":5}}
	]}`)
	require.NoError(t, err)

	headings := New(Options{}).Headings(md)
	assert.Equal(t, []Heading{
		{Level: 1, Text: "Plan"},
		{Level: 3, Text: "Details here"},
	}, headings)
}

func TestConvertedCodeBlockRendersAsPre(t *testing.T) {
	md, err := converter.ToMarkdown(`{"ops":[{"insert":"x := 1"},{"insert":"\n","attributes":{"code-block":true}}]}`)
	require.NoError(t, err)

	html, err := New(Options{}).HTML(md)
	require.NoError(t, err)
	assert.Equal(t, "<pre><code>x := 1\n</code></pre>\n", html)
}
