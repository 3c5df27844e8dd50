// Package normalize provides deterministic text normalization for names and
// email local-parts. Every function here is total: no input can fail.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Turkish letters that survive NFD decomposition (dotless i in particular)
// are mapped explicitly before ASCII stripping.
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

var asciiFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

var genericMailboxTokens = map[string]struct{}{
	"info":     {},
	"hr":       {},
	"admin":    {},
	"support":  {},
	"help":     {},
	"contact":  {},
	"noreply":  {},
	"no-reply": {},
	"sales":    {},
	"career":   {},
	"careers":  {},
	"jobs":     {},
	"team":     {},
}

// NormalizeText folds the input to lowercase ASCII words: Unicode
// decomposition, Turkish transliteration, diacritic and non-ASCII removal,
// then every non-alphanumeric becomes a space and runs of whitespace collapse.
// Idempotent; empty input yields an empty string.
func NormalizeText(text string) string {
	folded, _, err := transform.String(asciiFolder, turkishReplacer.Replace(text))
	if err != nil {
		// Invalid UTF-8 degrades to the raw string; the alphanumeric
		// filter below still guarantees a clean result.
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExtractLocalPart returns the substring before the first '@', trimmed.
// An input without '@' is returned whole; email shape is validated upstream.
func ExtractLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return strings.TrimSpace(local)
}

// TokenizeLocalPart normalizes the local-part and splits it into word
// tokens, so separators (".", "_", "-", "+") genuinely separate:
// "john.doe" yields ["john", "doe"] and "hr.recruiting" exposes "hr" to the
// generic-mailbox check. Never yields empty tokens.
func TokenizeLocalPart(local string) []string {
	return strings.Fields(NormalizeText(local))
}

// TokenizeFullName normalizes a full name and splits it on whitespace.
// Never yields empty tokens.
func TokenizeFullName(fullName string) []string {
	return strings.Fields(NormalizeText(fullName))
}

// IsGenericEmail reports whether any local token names a generic mailbox
// (info, hr, admin, ...) rather than a person.
func IsGenericEmail(localTokens []string) bool {
	for _, token := range localTokens {
		if _, ok := genericMailboxTokens[token]; ok {
			return true
		}
	}
	return false
}
