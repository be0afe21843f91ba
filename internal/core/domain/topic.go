package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// TopicKey is the lookup key for a debate topic: Unicode-normalized, case-folded
// and with runs of whitespace collapsed, so "Public  Transit" and "public transit" match.
func TopicKey(topic string) string {
	// A Caser keeps state, so each call gets its own.
	folded := cases.Fold().String(norm.NFKC.String(topic))
	return strings.Join(strings.Fields(folded), " ")
}
