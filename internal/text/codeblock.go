// Package text post-processes model completions before they are written out.
package text

import "regexp"

// CodeBlock is a fenced markdown block pulled out of a completion. Lang is
// the language tag after the opening fence, if any.
type CodeBlock struct {
	Text string
	Lang string
}

// fencePattern requires a non-empty body delimited by newlines on both
// sides, so inline triple backticks and empty fences do not count as blocks.
var fencePattern = regexp.MustCompile("```([a-zA-Z0-9.]*)\n([\\s\\S]+?)\n```")

// ExtractCodeBlock returns the first fenced code block in input. When no
// fence is present the whole input comes back unchanged with an empty Lang,
// so the call is safe to apply unconditionally.
func ExtractCodeBlock(input string) CodeBlock {
	m := fencePattern.FindStringSubmatch(input)
	if len(m) > 2 {
		return CodeBlock{Text: m[2], Lang: m[1]}
	}
	return CodeBlock{Text: input}
}
