package workspace

import "strings"

// EncodeSlug converts a branch name into a directory/session-safe slug.
// The mapping is total and reversible: underscores escape themselves,
// "_-" stands for a literal dash, and a bare "-" stands for a slash.
// Every dash in a slug therefore marks a path separator, so distinct
// branches never collide ("a/-b" encodes to "a-_-b", "a-/b" to "a_--b").
func EncodeSlug(branch string) string {
	if branch == "" {
		return "unknown"
	}
	s := strings.ReplaceAll(branch, "_", "__")
	s = strings.ReplaceAll(s, "-", "_-")
	return strings.ReplaceAll(s, "/", "-")
}

// DecodeSlug is the inverse of EncodeSlug: "-" restores a slash, "__" a
// literal underscore, "_-" a literal dash.
func DecodeSlug(slug string) string {
	var b strings.Builder
	b.Grow(len(slug))
	for i := 0; i < len(slug); i++ {
		switch {
		case slug[i] == '-':
			b.WriteByte('/')
		case slug[i] == '_' && i+1 < len(slug) && slug[i+1] == '-':
			b.WriteByte('-')
			i++
		case slug[i] == '_' && i+1 < len(slug) && slug[i+1] == '_':
			b.WriteByte('_')
			i++
		default:
			b.WriteByte(slug[i])
		}
	}
	return b.String()
}
