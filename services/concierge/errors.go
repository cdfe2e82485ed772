package concierge

import "fmt"

// ParseError reports that no JSON object could be recovered from the model's
// raw response text.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no JSON object found in model response: %s", snippet(e.Raw, 120))
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
