package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver("https://media.sechive.io/")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"relative with slash", "/avatars/ava.png", "https://media.sechive.io/avatars/ava.png"},
		{"relative without slash", "avatars/ava.png", "https://media.sechive.io/avatars/ava.png"},
		{"absolute http", "http://elsewhere.example/x.png", "http://elsewhere.example/x.png"},
		{"absolute https", "https://elsewhere.example/x.png", "https://elsewhere.example/x.png"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.ref))
		})
	}
}
