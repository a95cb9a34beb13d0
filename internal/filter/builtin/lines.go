package builtin

import "strings"

// defaultCount is the line count head and tail use when no argument is
// given, or when the argument is not a number.
const defaultCount = 10

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
