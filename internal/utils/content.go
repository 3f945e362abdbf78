package utils

import (
	"fmt"
	"html"
	"html/template"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ExcerptLength is the rune cutoff beyond which feed views show a
// truncated excerpt with a read-more link instead of the full body.
const ExcerptLength = 512

// RenderContent turns a raw post body into display HTML: the text is
// escaped first, then every literal #keyword becomes a tag-filter
// anchor and newlines become <br>. Escaping before linking keeps
// user-supplied markup inert without breaking the generated anchors,
// and everything that is not a hashtag or newline survives verbatim,
// just entity-escaped. base is the URL prefix the app is mounted under.
func RenderContent(content, base string) template.HTML {
	return template.HTML(renderFragment(content, base))
}

// RenderExcerpt is the feed-view renderer. Bodies longer than
// ExcerptLength runes are cut at the last space before the limit and a
// read-more link to the post's own page is appended.
func RenderExcerpt(content, base string, postID uint) template.HTML {
	if utf8.RuneCountInString(content) <= ExcerptLength {
		return RenderContent(content, base)
	}

	runes := []rune(content)
	cut := string(runes[:ExcerptLength])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}

	rendered := renderFragment(cut, base)
	more := fmt.Sprintf(" … <a href='%s/show?id=%d' class='readmore'>ادامه</a>", base, postID)
	return template.HTML(rendered + more)
}

// entityFix rewrites the numeric quote entities the escaper emits into
// named ones. The numeric forms contain a '#', which the hashtag regex
// would otherwise pick up as a keyword.
var entityFix = strings.NewReplacer("&#39;", "&apos;", "&#34;", "&quot;")

func renderFragment(content, base string) string {
	// Escape, never strip: text that happens to look like markup must
	// stay visible in the rendered post.
	escaped := entityFix.Replace(html.EscapeString(content))

	linked := hashtagRe.ReplaceAllStringFunc(escaped, func(m string) string {
		keyword := m[1:]
		return fmt.Sprintf("<a href='%s/?tag=%s' class='hashtag'>#%s</a>",
			base, url.QueryEscape(keyword), keyword)
	})

	linked = strings.ReplaceAll(linked, "\r\n", "\n")
	return strings.ReplaceAll(linked, "\n", "<br>")
}
