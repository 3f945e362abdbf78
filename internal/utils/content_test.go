package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContent(t *testing.T) {
	t.Run("links hashtags", func(t *testing.T) {
		got := string(RenderContent("shipping #golang today", ""))
		assert.Equal(t,
			"shipping <a href='/?tag=golang' class='hashtag'>#golang</a> today",
			got)
	})

	t.Run("markup is escaped, not removed", func(t *testing.T) {
		got := string(RenderContent("the <canvas> element is nice", ""))
		assert.Equal(t, "the &lt;canvas&gt; element is nice", got)

		got = string(RenderContent("<script>alert(1)</script> tail", ""))
		assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt; tail", got)
	})

	t.Run("escapes before linking", func(t *testing.T) {
		got := string(RenderContent("a < b & #go", ""))
		assert.Equal(t,
			"a &lt; b &amp; <a href='/?tag=go' class='hashtag'>#go</a>",
			got)
	})

	t.Run("newlines become breaks", func(t *testing.T) {
		got := string(RenderContent("line one\nline two\r\nline three", ""))
		assert.Equal(t, "line one<br>line two<br>line three", got)
	})

	t.Run("quote entities are not mistaken for hashtags", func(t *testing.T) {
		got := string(RenderContent("it's a \"test\" #go", ""))
		assert.Contains(t, got, "it&apos;s a &quot;test&quot;")
		assert.NotContains(t, got, "tag=39")
		assert.NotContains(t, got, "tag=34")
	})

	t.Run("non-latin keyword is query escaped in the href", func(t *testing.T) {
		got := string(RenderContent("#گو", ""))
		assert.Contains(t, got, "href='/?tag=%DA%AF%D9%88'")
		assert.Contains(t, got, ">#گو</a>")
	})

	t.Run("base url prefixes the anchors", func(t *testing.T) {
		got := string(RenderContent("#go", "/blog"))
		assert.Equal(t,
			"<a href='/blog/?tag=go' class='hashtag'>#go</a>", got)
	})
}

func TestRenderExcerpt(t *testing.T) {
	t.Run("short content passes through untouched", func(t *testing.T) {
		content := "short post with #tag"
		assert.Equal(t, RenderContent(content, ""), RenderExcerpt(content, "", 1))
	})

	t.Run("content at the limit is not truncated", func(t *testing.T) {
		content := strings.Repeat("a", ExcerptLength)
		got := string(RenderExcerpt(content, "", 1))
		assert.NotContains(t, got, "readmore")
	})

	t.Run("long content is cut at a word boundary", func(t *testing.T) {
		content := strings.Repeat("word ", 200)
		got := string(RenderExcerpt(content, "", 7))
		assert.Contains(t, got, "<a href='/show?id=7' class='readmore'>")
		assert.NotContains(t, got, "wor<")
	})

	t.Run("hashtags in the kept fragment are still linked", func(t *testing.T) {
		content := "#first " + strings.Repeat("filler ", 100)
		got := string(RenderExcerpt(content, "", 3))
		assert.Contains(t, got, "<a href='/?tag=first' class='hashtag'>#first</a>")
	})

	t.Run("base url reaches the read-more link", func(t *testing.T) {
		content := strings.Repeat("word ", 200)
		got := string(RenderExcerpt(content, "/blog", 7))
		assert.Contains(t, got, "<a href='/blog/show?id=7' class='readmore'>")
	})
}
