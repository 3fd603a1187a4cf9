package wordhash

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/jessejeter/spanish-tools/internal/domain"
)

// Normalize concatenates the entry's identifying content after cleaning
// each part. It trims whitespace, lowercases, and normalizes line endings
// so that cosmetic edits in a deck file do not change the entry's identity.
//
// Popularity, notes, and the date added are deliberately excluded: they may
// be refreshed on every sync without resetting the entry's review state.
func Normalize(entry domain.Entry) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	es := normalizePart(entry.Spanish)
	en := normalizePart(entry.English)
	pos := normalizePart(entry.PartOfSpeech)

	// Joined with newlines so adjacent fields cannot run together,
	// e.g. "pero" + "perro" colliding with "peroperro" + "".
	return strings.Join([]string{es, en, pos}, "\n")
}

// Hash normalizes an entry and returns its SHA-256 hash as a hex string.
func Hash(entry domain.Entry) string {
	normalized := Normalize(entry)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}
