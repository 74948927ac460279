package locale

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultCode is the locale used when nothing else is configured.
const DefaultCode = "en"

// IsValid reports whether code is a well-formed locale code:
// exactly two lowercase ASCII letters.
func IsValid(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := range 2 {
		if code[i] < 'a' || code[i] > 'z' {
			return false
		}
	}
	return true
}

// Set is a closed, statically enumerated set of supported locale codes.
// The default locale is always a member. Set is immutable after creation
// and safe for concurrent use.
type Set struct {
	codes []string
	def   string
}

// NewSet builds a supported-locale set with the given default locale.
// The default is always included and listed first; the remaining codes
// are deduplicated and sorted. Returns ErrInvalidCode if the default or
// any of the extra codes is not a well-formed locale code.
func NewSet(defaultCode string, codes ...string) (Set, error) {
	if !IsValid(defaultCode) {
		return Set{}, ErrInvalidCode
	}

	all := []string{defaultCode}
	for _, code := range codes {
		if !IsValid(code) {
			return Set{}, ErrInvalidCode
		}
		if code != defaultCode && !slices.Contains(all, code) {
			all = append(all, code)
		}
	}
	slices.Sort(all[1:])

	return Set{codes: all, def: defaultCode}, nil
}

// MustNewSet is like NewSet but panics on invalid input.
// Intended for static initialization with literal codes.
func MustNewSet(defaultCode string, codes ...string) Set {
	s, err := NewSet(defaultCode, codes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the set's default locale code.
func (s Set) Default() string {
	return s.def
}

// Contains reports whether code is a member of the set.
func (s Set) Contains(code string) bool {
	return slices.Contains(s.codes, code)
}

// Codes returns the member codes, default first. The returned slice is a
// copy and safe to modify.
func (s Set) Codes() []string {
	return slices.Clone(s.codes)
}

// IsZero reports whether the set was never initialized.
func (s Set) IsZero() bool {
	return s.def == ""
}

// Normalize reduces a BCP-47-like or POSIX locale signal ("es-MX",
// "es_MX.UTF-8", "ES") to its two-letter base language code. It parses
// the signal with x/text and falls back to the lowercased two-letter
// prefix when parsing fails. Returns "" when no valid code can be
// derived.
func Normalize(signal string) string {
	signal = strings.TrimSpace(signal)
	if signal == "" {
		return ""
	}

	// POSIX locale strings carry encoding/modifier suffixes
	// ("es_MX.UTF-8", "sr@latin") that language.Parse rejects.
	if i := strings.IndexAny(signal, ".@"); i >= 0 {
		signal = signal[:i]
	}
	signal = strings.ReplaceAll(signal, "_", "-")

	if tag, err := language.Parse(signal); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			if code := base.String(); IsValid(code) {
				return code
			}
		}
	}

	if len(signal) >= 2 {
		if code := strings.ToLower(signal[:2]); IsValid(code) {
			return code
		}
	}

	return ""
}
