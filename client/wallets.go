package client

import "strings"

// Wallet is a donation address listed at the bottom of the directory.
type Wallet struct {
	Label   string
	Chain   string
	Address string
}

var Wallets = []Wallet{
	{Label: "BTC", Chain: "Bitcoin", Address: "bc1qys3654z5qxaxsestykx78jfpwzeut6q4jq0j88"},
	{Label: "EVM", Chain: "EVM", Address: "0x6a5390FeFe51b3c102a65E80C570ac67a6b7ABbd"},
	{Label: "SOL", Chain: "Solana", Address: "AacPVJ1XH9XXNzsLQRjCi5rN5hxZvXfSzT1HYAf3HpbH"},
}

// FindWallet looks a wallet up by label, case-insensitively.
func FindWallet(label string) (Wallet, bool) {
	for _, w := range Wallets {
		if strings.EqualFold(w.Label, label) {
			return w, true
		}
	}
	return Wallet{}, false
}
