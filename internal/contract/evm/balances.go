package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/goodnatureofminers/blockforge-backend/pkg/workerpool"
)

// DefaultBalanceWorkers bounds concurrent balance queries.
const DefaultBalanceWorkers = 4

// Balance is the native-token balance of one account.
type Balance struct {
	Address common.Address
	Wei     *big.Int
}

// IsZero reports whether the account holds no funds.
func (b Balance) IsZero() bool {
	return b.Wei == nil || b.Wei.Sign() == 0
}

// Ether formats the balance in whole units with four decimals.
func (b Balance) Ether() string {
	if b.Wei == nil {
		return "0.0000"
	}
	return new(big.Rat).SetFrac(b.Wei, big.NewInt(params.Ether)).FloatString(4)
}

// Balances queries the latest balance of every account, preserving input order.
func Balances(ctx context.Context, backend Backend, accounts []common.Address, workers int) ([]Balance, error) {
	if workers <= 0 {
		workers = DefaultBalanceWorkers
	}
	return workerpool.Map(ctx, workers, accounts, func(ctx context.Context, account common.Address) (Balance, error) {
		wei, err := backend.BalanceAt(ctx, account, nil)
		if err != nil {
			return Balance{}, fmt.Errorf("balance of %s: %w", account.Hex(), err)
		}
		return Balance{Address: account, Wei: wei}, nil
	})
}
