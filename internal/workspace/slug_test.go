package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSlug(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"main", "main"},
		{"feat/login", "feat-login"},
		{"feat/login-retry", "feat-login_-retry"},
		{"a/b", "a-b"},
		{"a-b", "a_-b"},
		{"a-b/c-d", "a_-b-c_-d"},
		{"a/-b", "a-_-b"},
		{"a-/b", "a_--b"},
		{"a_b", "a__b"},
		{"release/2026-08", "release-2026_-08"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeSlug(tt.branch), "branch %q", tt.branch)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	branches := []string{
		"main",
		"feat/login",
		"feat/login-retry",
		"a/b",
		"a-b",
		"a-b/c-d",
		"a--b",
		"a/-b",
		"a-/b",
		"x-/y-z",
		"a_b",
		"a__b",
		"a_-b",
		"-leading",
		"trailing-",
		"deep/nest/ed/branch",
		"mixed-1/with-2/dashes-3",
	}
	for _, branch := range branches {
		assert.Equal(t, branch, DecodeSlug(EncodeSlug(branch)), "round trip %q", branch)
	}
}

func TestEncodeSlugNoCollision(t *testing.T) {
	// The naive slash→dash substitution maps each of these pairs to the
	// same directory name.
	pairs := [][2]string{
		{"a/b", "a-b"},
		{"a/-b", "a-/b"},
		{"x-/y-z", "x/-y-z"},
	}
	for _, p := range pairs {
		assert.NotEqual(t, EncodeSlug(p[0]), EncodeSlug(p[1]), "branches %q and %q", p[0], p[1])
	}
}
