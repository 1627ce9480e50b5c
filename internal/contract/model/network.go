package model

import (
	"fmt"
	"strings"
)

// Network describes an Ethereum-compatible target network.
type Network struct {
	Name        string
	ChainID     uint64
	RPCURL      string
	ExplorerURL string
	FaucetURL   string
	IsTestnet   bool
}

var (
	// PassetHub is the Polkadot Hub TestNet served over an Ethereum JSON-RPC adapter.
	PassetHub = Network{
		Name:        "passetHub",
		ChainID:     420420422,
		RPCURL:      "https://testnet-passet-hub-eth-rpc.polkadot.io",
		ExplorerURL: "https://blockscout-passet-hub.parity-testnet.parity.io/address/%s",
		FaucetURL:   "https://faucet.polkadot.io/?parachain=1111",
		IsTestnet:   true,
	}
	// Paseo is the Paseo testnet as configured for Hardhat deployments.
	Paseo = Network{
		Name:        "paseo",
		RPCURL:      "https://testnet-passet-hub-eth-rpc.polkadot.io",
		ExplorerURL: "https://paseo.subscan.io/account/%s",
		IsTestnet:   true,
	}
)

// KnownNetworks lists networks addressable by name.
var KnownNetworks = []Network{PassetHub, Paseo}

// NetworkByName returns a known network by case-insensitive name.
func NetworkByName(name string) (Network, bool) {
	for _, n := range KnownNetworks {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Network{}, false
}

// AddressURL returns the explorer link for an address, or "" when the network has no explorer.
func (n Network) AddressURL(address string) string {
	if n.ExplorerURL == "" || address == "" {
		return ""
	}
	return fmt.Sprintf(n.ExplorerURL, address)
}
