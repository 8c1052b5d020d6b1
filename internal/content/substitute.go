package content

import "strings"

// Placeholder tokens recognized in authored content lines. Substitution is
// literal, case-sensitive, and single-pass: a substituted value that itself
// contains a token-like string is never expanded again. Unrecognized tokens
// are left verbatim so content-authoring typos stay visible.
const (
	TokenReceiverName   = "{{receiverName}}"
	TokenSpecialMemory  = "{{specialMemory}}"
	TokenSpecificMemory = "{{specificMemory}}"
	TokenGratefulFor    = "{{gratefulFor}}"
)

// Defaults used when the caller supplies no value for an optional field.
const (
	DefaultSpecialMemory = "all the little moments we've shared"
	DefaultGratefulFor   = "having you in my life"
)

// Values holds the caller-supplied substitution values for one generation.
type Values struct {
	ReceiverName  string
	SpecialMemory string
	GratefulFor   string
}

// Substitute replaces every recognized placeholder token in line with the
// corresponding value. Empty or whitespace-only SpecialMemory and GratefulFor
// values fall back to the documented generic phrases rather than leaving the
// token unreplaced or inserting an empty string.
// Parameters:
//   - line: templated text line.
//   - v: substitution values.
// Returns:
//   - string: line with all recognized tokens replaced.
func Substitute(line string, v Values) string {
	memory := strings.TrimSpace(v.SpecialMemory)
	if memory == "" {
		memory = DefaultSpecialMemory
	}
	grateful := strings.TrimSpace(v.GratefulFor)
	if grateful == "" {
		grateful = DefaultGratefulFor
	}

	// strings.Replacer walks the input once left to right and never rescans
	// replaced text, which gives exactly the single-pass semantics required.
	r := strings.NewReplacer(
		TokenReceiverName, v.ReceiverName,
		TokenSpecialMemory, memory,
		TokenSpecificMemory, memory,
		TokenGratefulFor, grateful,
	)
	return r.Replace(line)
}

// KnownToken reports whether a {{...}} token name is one of the recognized
// placeholders. Used by the content linter to flag authoring typos.
func KnownToken(name string) bool {
	switch "{{" + name + "}}" {
	case TokenReceiverName, TokenSpecialMemory, TokenSpecificMemory, TokenGratefulFor:
		return true
	}
	return false
}
