package model

import "github.com/ethereum/go-ethereum/common"

// Account is an account exposed by a wallet extension.
type Account struct {
	Address common.Address
	Name    string
	// Source is the name of the extension that owns the account.
	Source string
}
