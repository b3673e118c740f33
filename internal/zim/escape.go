// Package zim renders a normalized segment tree as Zim wiki markup.
package zim

import (
	"regexp"
	"strings"
)

// zeroWidth is interleaved between the characters of an incidental control
// sequence so Zim's parser cannot reinterpret prose as markup.
const zeroWidth = "\u200b"

type escapeRule struct {
	re *regexp.Regexp
	// keepURL leaves matches that are part of a URL scheme prefix alone.
	keepURL bool
}

// Ordered: bold, italic, strikethrough, highlight, link brackets, monospace.
// The italic pattern also matches a full scheme prefix so "http://" is
// recognized and kept, not split.
var escapeRules = []escapeRule{
	{re: regexp.MustCompile(`\*\*`)},
	{re: regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://|//`), keepURL: true},
	{re: regexp.MustCompile(`~~`)},
	{re: regexp.MustCompile(`__`)},
	{re: regexp.MustCompile(`\[\[`)},
	{re: regexp.MustCompile(`\]\]`)},
	{re: regexp.MustCompile(`''`)},
}

// Escape defuses Zim control sequences occurring in plain prose. Block
// literal content is never escaped; it must round-trip byte for byte.
func Escape(text string) string {
	for _, rule := range escapeRules {
		text = rule.re.ReplaceAllStringFunc(text, func(m string) string {
			if rule.keepURL && strings.Contains(m, "://") {
				return m
			}
			return interleave(m)
		})
	}
	return text
}

func interleave(s string) string {
	parts := strings.Split(s, "")
	return strings.Join(parts, zeroWidth)
}
