package security

import (
	"net/url"
	"regexp"
	"unicode/utf8"
)

var (
	// Title accepts ASCII word characters plus the common Japanese script
	// ranges (punctuation, hiragana, katakana, full-width forms, kanji).
	titlePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_\x{3000}-\x{303f}\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{ff00}-\x{ff9f}\x{4e00}-\x{9faf}]+$`)

	addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
)

const (
	maxTitleRunes = 100
	maxPrice      = 1_000_000
)

// ValidTitle reports whether a listing title is 1-100 runes drawn from the
// allowed character set.
func ValidTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	if n < 1 || n > maxTitleRunes {
		return false
	}
	return titlePattern.MatchString(title)
}

func ValidPrice(price float64) bool {
	return price >= 0 && price <= maxPrice
}

// ValidWalletAddress reports whether the address is 0x followed by exactly
// 40 hex characters.
func ValidWalletAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// ValidURL accepts absolute http/https URLs only; the protocol is required.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
