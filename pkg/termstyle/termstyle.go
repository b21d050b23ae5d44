// Package termstyle wraps text in ANSI escape sequences for terminal emphasis.
package termstyle

const (
	Green    = "\033[92m"
	Red      = "\033[91m"
	BoldCode = "\033[1m"
	Reset    = "\033[0m"
)

// Bold renders text in bold.
func Bold(text string) string {
	return BoldCode + text + Reset
}

// RedText renders text in red.
func RedText(text string) string {
	return Red + text + Reset
}

// BoldRed renders text in bold red.
func BoldRed(text string) string {
	return Bold(RedText(text))
}

// GreenText renders text in green.
func GreenText(text string) string {
	return Green + text + Reset
}

// BoldGreen renders text in bold green.
func BoldGreen(text string) string {
	return Bold(GreenText(text))
}
