package evm

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	// Backend is the subset of the go-ethereum client used by this package.
	Backend interface {
		ChainID(ctx context.Context) (*big.Int, error)
		BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}

	// Signer signs transactions on behalf of one account.
	Signer interface {
		Address() common.Address
		SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
	}

	// Compiler compiles a contract into the artifact directory of a Hardhat project.
	Compiler interface {
		Compile(ctx context.Context, source, contractName string) error
		Dir() string
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// DeployMetrics records metrics for deployment stages.
	DeployMetrics interface {
		Observe(stage string, err error, started time.Time)
	}
)
