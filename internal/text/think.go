package text

import "strings"

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// StripThinkTags removes the leading <think>...</think> section some models
// prepend to their answer. Text that does not open with the tag, or that
// never closes it, passes through unchanged.
func StripThinkTags(s string) string {
	if !strings.HasPrefix(s, thinkOpen) {
		return s
	}
	end := strings.Index(s, thinkClose)
	if end < 0 {
		return s
	}
	return strings.TrimLeft(s[end+len(thinkClose):], "\n")
}
