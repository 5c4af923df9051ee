package markdown

import (
	"bytes"
	"html"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders code blocks as class-annotated HTML.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter uses the named chroma style, or chroma's fallback style
// when the name is unknown.
func NewHighlighter(style string) *Highlighter {
	return &Highlighter{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight returns HTML for code. lang is the fence's language tag and hint
// the language the code was submitted as; either may be empty. Untagged code
// is detected from its content, and hint is used only when detection finds
// nothing. Any failure falls back to escaped plain text, so it never errors.
func (h *Highlighter) Highlight(code, lang, hint string) string {
	if out, err := h.format(code, h.lexerFor(code, lang, hint)); err == nil {
		return out
	}
	if out, err := h.format(code, detect(code)); err == nil {
		return out
	}
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}

// CSS returns the stylesheet for the highlighter's classes.
func (h *Highlighter) CSS() string {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return ""
	}
	return buf.String()
}

func (h *Highlighter) lexerFor(code, lang, hint string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	if hint != "" {
		if l := lexers.Get(hint); l != nil {
			return l
		}
	}
	return lexers.Fallback
}

func (h *Highlighter) format(code string, lexer chroma.Lexer) (string, error) {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func detect(code string) chroma.Lexer {
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}
