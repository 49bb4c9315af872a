package entity

import "fmt"

// WalletProfile is one of the fixed demo wallets a connect may select.
type WalletProfile struct {
	Name    string
	Address string
	Balance float64
}

// TestWalletProfiles returns the three fixed demo wallets. Connect picks one
// of these uniformly at random; no other wallet can ever appear.
func TestWalletProfiles() []WalletProfile {
	return []WalletProfile{
		{Name: "テストウォレット1", Address: "0x7890abcdef1234567890abcdef1234567890abcd", Balance: 5.0},
		{Name: "テストウォレット2", Address: "0xabcdef1234567890abcdef1234567890abcdef12", Balance: 3.0},
		{Name: "テストウォレット3", Address: "0x1234567890abcdef1234567890abcdef12345678", Balance: 10.0},
	}
}

// ShortAddress renders an address truncated for display: first 6 characters,
// an ellipsis, last 4. Addresses too short to truncate are returned as-is.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}

// FormatBalance renders an ETH amount with the currency symbol and fixed
// three decimal places.
func FormatBalance(amount float64) string {
	return fmt.Sprintf("Ξ %.3f", amount)
}
