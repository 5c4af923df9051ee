package markdown

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReview = "🧠 Gemini Review:\n\n## Issues\n\n" +
	"Null check missing\non line 3.\n\n" +
	"```java\npublic class A { int x = 1; }\n```\n\n" +
	"```\nfunc main() {}\n```\n"

func TestRender_HighlightsFences(t *testing.T) {
	r := New("github")
	res, err := r.Render(sampleReview, "go")
	require.NoError(t, err)

	assert.Contains(t, res.HTML, "<h2")
	assert.Contains(t, res.HTML, `class="chroma"`)
	assert.Equal(t, 2, strings.Count(res.HTML, `class="chroma"`), "both fences highlighted")
	assert.Contains(t, res.HTML, "<br", "soft line breaks are kept")
	assert.Equal(t, sampleReview, res.Markdown)
}

func TestRender_SanitizesRawHTML(t *testing.T) {
	r := New("github")
	res, err := r.Render("hello <script>alert(1)</script> <img src=x onerror=alert(1)>", "")
	require.NoError(t, err)
	assert.NotContains(t, res.HTML, "<script")
	assert.NotContains(t, res.HTML, "onerror")
}

func TestRender_PlainText(t *testing.T) {
	r := New("github")
	res, err := r.Render("# Title\n\nUse `a < b` & check.", "")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Title")
	assert.Contains(t, res.Text, "a < b")
	assert.Contains(t, res.Text, "& check.")
	assert.NotContains(t, res.Text, "<h1")
}

func TestHighlight_UnknownLanguageFallsBack(t *testing.T) {
	h := NewHighlighter("github")
	out := h.Highlight("x := 1\n", "definitely-not-a-language", "")
	assert.Contains(t, out, "x")
	assert.NotEmpty(t, out)
}

func TestRender_UntaggedFenceIsDetected(t *testing.T) {
	r := New("github")
	md := "```\n#!/usr/bin/env python\ndef f(x):\n    return x\n```\n"
	res, err := r.Render(md, "java")
	require.NoError(t, err)
	assert.NotContains(t, res.HTML, `class="err"`, "python is not tokenised as java")
	assert.Contains(t, res.HTML, `<span class="k">def</span>`)
}

func TestLexerFor(t *testing.T) {
	h := NewHighlighter("github")
	python := "#!/usr/bin/env python\nprint(1)\n"

	assert.Equal(t, "Java", h.lexerFor(python, "java", "go").Config().Name, "fence tag wins")
	assert.Equal(t, "Python", h.lexerFor(python, "", "java").Config().Name, "detection beats the hint")
	assert.Equal(t, "Go", h.lexerFor("x\n", "", "go").Config().Name, "hint when nothing is detected")
	assert.Equal(t, lexers.Fallback, h.lexerFor("x\n", "", ""))
}

func TestHighlight_EscapesCode(t *testing.T) {
	h := NewHighlighter("github")
	out := h.Highlight("<b>bold</b>\n", "", "")
	assert.NotContains(t, out, "<b>bold</b>")
}

func TestHighlighter_CSS(t *testing.T) {
	assert.Contains(t, NewHighlighter("github").CSS(), ".chroma")
}

func TestTerminal(t *testing.T) {
	r := New("github")
	out, err := r.Terminal("# Heading\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
}
