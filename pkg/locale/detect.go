package locale

import "os"

// Detect derives the initial locale, first match wins:
//
//  1. stored preference, if well-formed and a member of the set
//  2. base language of the environment signal, if a member of the set
//  3. the set's default locale
//
// Detect is pure given its inputs; callers own reading the preference
// and the signal.
func Detect(stored, signal string, set Set) string {
	if IsValid(stored) && set.Contains(stored) {
		return stored
	}
	if code := Normalize(signal); code != "" && set.Contains(code) {
		return code
	}
	return set.Default()
}

// EnvironmentSignal reads the process locale signal from the standard
// POSIX variables, in precedence order: LC_ALL, LC_MESSAGES, LANG.
// Returns "" when none is set.
func EnvironmentSignal() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
