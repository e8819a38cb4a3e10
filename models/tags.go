package models

// TagVocabulary is the reference list of categories offered as filters, in
// display order. The database does not enforce it: projects may carry tags
// outside this list.
var TagVocabulary = []string{
	"DeFi",
	"DEX",
	"Perps",
	"L1",
	"L2",
	"L3",
	"ZK",
	"FHE",
	"RWA",
	"Framework",
	"Based Rollup",
	"Abstraction",
	"Wallet",
	"Payment",
	"Restaking",
	"Gambling",
	"AI",
	"Terminal",
	"Bridge",
	"Privacy",
	"Lending",
}

// IsKnownTag reports whether tag belongs to TagVocabulary.
func IsKnownTag(tag string) bool {
	for _, t := range TagVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}
