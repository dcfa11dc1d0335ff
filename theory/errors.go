package theory

import "fmt"

// ParseError reports a note token that could not be parsed. The original
// token is kept so callers can reconstruct the cause.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid note %q: %s", e.Token, e.Reason)
}

// UnsupportedScaleTypeError reports a scale type outside the supported set.
type UnsupportedScaleTypeError struct {
	ScaleType string
}

func (e *UnsupportedScaleTypeError) Error() string {
	return fmt.Sprintf("unsupported scale type: %s", e.ScaleType)
}
