// Package prompt builds the completion prompt for a single invocation from
// piped standard input and the command-line argument.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Separator joins piped input and the argument prompt when both are present,
// so the argument can pose a question about the piped text.
const Separator = "\n----\n"

// ErrEmpty is returned when the composed prompt contains nothing to send.
var ErrEmpty = errors.New("no prompt provided")

// ReadPiped consumes all of r and drops the trailing newline a shell pipe
// usually appends. Call it only when stdin is not a terminal.
func ReadPiped(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading piped input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// Compose combines the piped input and the argument prompt into the text sent
// to the model. When both are present they are joined with Separator; when
// only one is present it is used verbatim. A prompt that is empty or all
// whitespace yields ErrEmpty.
func Compose(piped, arg string) (string, error) {
	var composed string
	switch {
	case piped != "" && arg != "":
		composed = piped + Separator + arg
	case arg != "":
		composed = arg
	default:
		composed = piped
	}

	if strings.TrimSpace(composed) == "" {
		return "", ErrEmpty
	}
	return composed, nil
}
