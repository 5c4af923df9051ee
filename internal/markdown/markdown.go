// Package markdown renders review text: markdown with embedded code fences
// becomes sanitized HTML with highlighted code, plain text for mailing, or
// styled terminal output.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Result is one rendered review.
type Result struct {
	Markdown string
	HTML     string
	Text     string
}

// Renderer converts review markdown.
type Renderer struct {
	hl       *Highlighter
	policy   *bluemonday.Policy
	strip    *bluemonday.Policy
	wordWrap int
	term     *glamour.TermRenderer
}

// New creates a renderer highlighting with the given chroma style.
func New(style string) *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^[\w\s-]+$`)).OnElements("span", "pre", "code", "div")

	return &Renderer{
		hl:       NewHighlighter(style),
		policy:   policy,
		strip:    bluemonday.StrictPolicy(),
		wordWrap: 80,
	}
}

// Highlighter exposes the code highlighter, e.g. for its stylesheet.
func (r *Renderer) Highlighter() *Highlighter { return r.hl }

// Render converts md to sanitized HTML. hint is the language the reviewed
// code was submitted as; it seeds highlighting of fences without a tag.
// Line breaks inside paragraphs are kept as <br>.
func (r *Renderer) Render(md, hint string) (Result, error) {
	conv := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			renderer.WithNodeRenderers(util.Prioritized(&codeBlockRenderer{hl: r.hl, hint: hint}, 100)),
		),
	)

	var buf bytes.Buffer
	if err := conv.Convert([]byte(md), &buf); err != nil {
		return Result{}, fmt.Errorf("convert markdown: %w", err)
	}

	safe := r.policy.Sanitize(buf.String())
	return Result{
		Markdown: md,
		HTML:     safe,
		Text:     PlainText(r.strip, safe),
	}, nil
}

// Terminal renders md with glamour for display in a terminal.
func (r *Renderer) Terminal(md string) (string, error) {
	if r.term == nil {
		term, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.wordWrap),
		)
		if err != nil {
			return "", fmt.Errorf("create terminal renderer: %w", err)
		}
		r.term = term
	}
	return r.term.Render(md)
}

// PlainText strips all markup from rendered HTML, keeping its text.
func PlainText(strip *bluemonday.Policy, rendered string) string {
	return strings.TrimSpace(html.UnescapeString(strip.Sanitize(rendered)))
}

// codeBlockRenderer hands every code block to the highlighter.
type codeBlockRenderer struct {
	hl   *Highlighter
	hint string
}

func (c *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, c.render)
	reg.Register(ast.KindCodeBlock, c.render)
}

func (c *codeBlockRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var lang string
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(source))
	}

	var code bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	_, _ = w.WriteString(c.hl.Highlight(code.String(), lang, c.hint))
	return ast.WalkSkipChildren, nil
}
