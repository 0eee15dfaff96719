package palette

import "errors"

// Sentinel errors for parsing and resolution. All are fatal to the
// current compilation; callers receive a single descriptive failure
// and no partial output.
var (
	// ErrMalformedStatement is returned for statements missing the
	// name:value separator, bad block syntax, or unbalanced braces.
	ErrMalformedStatement = errors.New("malformed statement")

	// ErrInvalidNumber is returned when an operator argument is not numeric.
	ErrInvalidNumber = errors.New("invalid numeric value")

	// ErrUnknownLinkTarget is returned at parse time when a simple
	// top-level link references a name not yet declared.
	ErrUnknownLinkTarget = errors.New("unknown link target")

	// ErrUnresolvedReference is returned at resolution time when a
	// relative base or link target has not been resolved.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrUnknownColor is returned when a literal token is neither a
	// valid hex code nor a known color name.
	ErrUnknownColor = errors.New("unknown color")
)
