package aoc

import "strings"

// Lines splits text into its non-empty lines. A trailing "\r" on each line is
// dropped so CRLF inputs behave like LF ones.
func Lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
