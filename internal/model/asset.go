package model

import (
	"fmt"
	"strings"
)

// Asset identifies one of the tracked cryptocurrencies.
type Asset int

const (
	Bitcoin Asset = iota + 1
	Ethereum
	Ripple
)

// AllAssets lists every tracked asset in display order.
var AllAssets = []Asset{Bitcoin, Ethereum, Ripple}

var assetNames = map[Asset]string{
	Bitcoin:  "Bitcoin",
	Ethereum: "Ethereum",
	Ripple:   "Ripple",
}

// Kraken trading-pair identifiers.
var assetPairs = map[Asset]string{
	Bitcoin:  "XXBTZUSD",
	Ethereum: "XETHZUSD",
	Ripple:   "XXRPZUSD",
}

func (a Asset) String() string {
	if name, ok := assetNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Asset(%d)", int(a))
}

// Pair returns the exchange trading-pair identifier.
func (a Asset) Pair() string {
	return assetPairs[a]
}

// Valid reports whether a is one of the tracked assets.
func (a Asset) Valid() bool {
	_, ok := assetNames[a]
	return ok
}

// ParseAsset accepts a display name ("bitcoin"), a common ticker ("btc")
// or a pair identifier ("XXBTZUSD"), case-insensitively.
func ParseAsset(s string) (Asset, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "bitcoin", "btc", "xbt", "xxbtzusd":
		return Bitcoin, nil
	case "ethereum", "eth", "xethzusd":
		return Ethereum, nil
	case "ripple", "xrp", "xxrpzusd":
		return Ripple, nil
	}
	return 0, fmt.Errorf("unknown asset %q", s)
}
