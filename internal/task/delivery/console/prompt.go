package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errInvalidPriorityPrompt = errors.New("Invalid priority. Please enter high, medium, or low.")

// prompt writes label and reads one line. io.EOF means input is exhausted.
func (h *handler) prompt(label string) (string, error) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(h.out)
		return "", io.EOF
	}
	return strings.TrimRight(h.in.Text(), "\r"), nil
}

// promptUntil re-prompts until check accepts the line, printing each rejection.
func (h *handler) promptUntil(label string, check func(string) error) (string, error) {
	for {
		line, err := h.prompt(label)
		if err != nil {
			return "", err
		}
		if err := check(line); err != nil {
			h.println(err.Error())
			continue
		}
		return line, nil
	}
}

func (h *handler) println(s string) {
	fmt.Fprintln(h.out, s)
}
