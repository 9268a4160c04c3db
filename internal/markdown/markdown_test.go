package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessBody_Markdown(t *testing.T) {
	tp := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"emphasis", "some *emphasized* text", "<p>some <em>emphasized</em> text</p>"},
		{"code span", "run `id` first", "<p>run <code>id</code> first</p>"},
		{"strikethrough", "~~wrong~~ right", "<p><del>wrong</del> right</p>"},
		{"plain text", "nothing special", "<p>nothing special</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mentions := tp.ProcessBody(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, mentions)
		})
	}
}

func TestProcessBody_FencedCodeSurvives(t *testing.T) {
	tp := New()
	got, _ := tp.ProcessBody("```\npayload := \"<svg onload=alert(1)>\"\n```")
	assert.Contains(t, got, "<pre>")
	assert.NotContains(t, got, "<svg")
}

func TestProcessBody_Mentions(t *testing.T) {
	tp := New()

	t.Run("single mention", func(t *testing.T) {
		got, mentions := tp.ProcessBody("thanks @ava for the writeup")
		assert.Contains(t, got, `<a class="mention" href="/users/ava">@ava</a>`)
		assert.Equal(t, []string{"ava"}, mentions)
	})

	t.Run("deduplicated in order", func(t *testing.T) {
		_, mentions := tp.ProcessBody("@bob and @ava, then @bob again")
		assert.Equal(t, []string{"bob", "ava"}, mentions)
	})

	t.Run("email address is not a mention", func(t *testing.T) {
		got, mentions := tp.ProcessBody("mail me at root@example.org")
		assert.Empty(t, mentions)
		assert.NotContains(t, got, "mention")
	})
}

func TestProcessBody_SanitizesScripts(t *testing.T) {
	tp := New()

	got, _ := tp.ProcessBody(`<script>alert("xss")</script>hello`)
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "hello")

	got, _ = tp.ProcessBody(`<img src=x onerror=alert(1)>ok`)
	assert.NotContains(t, got, "onerror")
}
