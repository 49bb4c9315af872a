package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  bool
	}{
		{"ascii", "Neon Utopia", true},
		{"japanese", "ネオン・ユートピア", true},
		{"kanji and hiragana", "未来都市の夜", true},
		{"hyphen underscore", "city-scape_01", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 101), false},
		{"max length", strings.Repeat("a", 100), true},
		{"emoji", "city 🌃", false},
		{"angle brackets", "<script>", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidTitle(tc.title))
		})
	}
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice(0))
	assert.True(t, ValidPrice(2.5))
	assert.True(t, ValidPrice(1_000_000))
	assert.False(t, ValidPrice(-0.1))
	assert.False(t, ValidPrice(1_000_000.1))
}

func TestValidWalletAddress(t *testing.T) {
	assert.True(t, ValidWalletAddress("0x7890abcdef1234567890abcdef1234567890abcd"))
	assert.True(t, ValidWalletAddress("0xABCDEF1234567890abcdef1234567890ABCDEF12"))
	assert.False(t, ValidWalletAddress("7890abcdef1234567890abcdef1234567890abcd"))
	assert.False(t, ValidWalletAddress("0x7890abcdef"))
	assert.False(t, ValidWalletAddress("0x7890abcdef1234567890abcdef1234567890abcdef"))
	assert.False(t, ValidWalletAddress("0xZZ90abcdef1234567890abcdef1234567890abcd"))
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://example.com/listing/1"))
	assert.True(t, ValidURL("http://localhost:8080"))
	assert.False(t, ValidURL("ftp://example.com"))
	assert.False(t, ValidURL("example.com"))
	assert.False(t, ValidURL("//example.com"))
	assert.False(t, ValidURL("javascript:alert(1)"))
}
