// Package markdown renders post and comment bodies. Markdown is rendered
// with a deliberately small parser set (code, emphasis, strikethrough), then
// @handle mentions become profile links, then the result is sanitized.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// mentionRegex matches @handle outside of word boundaries. Handles follow
// the platform rule: 2-32 chars, alphanumeric plus dash/underscore.
var mentionRegex = regexp.MustCompile(`(^|[\s>(])@([a-zA-Z0-9_-]{2,32})\b`)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewAutoLinkParser(), 300),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile("^mention$")).OnElements("a")
	policy.RequireNoFollowOnLinks(false)

	return &TextProcessor{md: md, policy: policy}
}

// ProcessBody renders a body to sanitized HTML and returns the list of
// mentioned handles (deduplicated, in order of first appearance).
func (tp *TextProcessor) ProcessBody(body string) (string, []string) {
	rendered, _ := tp.renderText(body)
	linked, mentions := tp.processMentions(rendered)
	return tp.policy.Sanitize(linked), mentions
}

// processMentions rewrites @handle occurrences into profile links.
func (tp *TextProcessor) processMentions(text string) (string, []string) {
	var mentions []string
	seen := make(map[string]struct{})

	processed := mentionRegex.ReplaceAllStringFunc(text, func(match string) string {
		submatch := mentionRegex.FindStringSubmatch(match)
		if len(submatch) < 3 {
			return match // shouldn't happen due to prior match
		}
		prefix, handle := submatch[1], submatch[2]
		if _, ok := seen[handle]; !ok {
			seen[handle] = struct{}{}
			mentions = append(mentions, handle)
		}
		return fmt.Sprintf(`%s<a class="mention" href="/users/%s">@%s</a>`, prefix, handle, handle)
	})

	return processed, mentions
}

func (tp *TextProcessor) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return text, err
	}
	return strings.TrimSpace(buf.String()), nil
}
