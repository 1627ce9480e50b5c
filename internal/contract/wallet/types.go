package wallet

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

type (
	// Extension is a source of accounts able to sign for them.
	Extension interface {
		Name() string
		Accounts(ctx context.Context) ([]model.Account, error)
		Signer(address common.Address) (Signer, error)
	}

	// Signer signs transactions for one account.
	Signer interface {
		Address() common.Address
		SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
	}
)
