package wordlist

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/vocard/internal/model"
)

// KeepComplete drops pairs with an empty word or meaning.
func KeepComplete(p model.WordPair) bool {
	return p.Word != "" && p.Meaning != ""
}

// normalizeField trims and NFC-normalizes a CSV field. Lists converted from
// PDFs often carry decomposed Hangul.
func normalizeField(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
