package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads interactive answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line asks for a single value. An empty answer is allowed.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// list asks for a comma-separated list and returns the trimmed non-empty
// items.
func (p *prompter) list(label string) ([]string, error) {
	text, err := p.line(label + " (comma-separated)")
	if err != nil {
		return nil, err
	}
	return splitList(text), nil
}

// splitList turns comma-separated input into trimmed items.
func splitList(text string) []string {
	items := []string{}
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
