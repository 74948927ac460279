package locale

import (
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage parses an Accept-Language header and returns the
// set member with the highest quality value. Region subtags are reduced
// to their base language ("es-MX" matches "es"). Returns ("", false)
// when the header is empty or nothing matches.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func MatchAcceptLanguage(header string, set Set) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var (
		best     string
		bestQual = -1.0
	)

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)
		if langPart == "" || langPart == "*" {
			continue
		}

		quality := 1.0
		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		code := Normalize(langPart)
		if code == "" || !set.Contains(code) {
			continue
		}
		if quality > bestQual {
			best = code
			bestQual = quality
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
