// Package evm talks to Ethereum-compatible nodes over JSON-RPC.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client wraps a Backend with metrics instrumentation.
type Client struct {
	backend    Backend
	rpcMetrics RPCMetrics
	close      func()
}

// NewClient constructs an instrumented client.
func NewClient(backend Backend, rpcMetrics RPCMetrics) *Client {
	return &Client{
		backend:    backend,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to the JSON-RPC endpoint at url.
func Dial(ctx context.Context, url string, rpcMetrics RPCMetrics) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := NewClient(ec, rpcMetrics)
	c.close = ec.Close
	return c, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}

// ChainID returns the chain id reported by the node.
func (c *Client) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("chain_id", err, started)
	}()
	return c.backend.ChainID(ctx)
}

// BalanceAt returns the balance of account in wei; a nil blockNumber means latest.
func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (balance *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("balance_at", err, started)
	}()
	return c.backend.BalanceAt(ctx, account, blockNumber)
}

// PendingNonceAt returns the next nonce for account.
func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("pending_nonce_at", err, started)
	}()
	return c.backend.PendingNonceAt(ctx, account)
}

// SuggestGasPrice returns the node's legacy gas price suggestion.
func (c *Client) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("suggest_gas_price", err, started)
	}()
	return c.backend.SuggestGasPrice(ctx)
}

// EstimateGas estimates the gas needed to execute msg.
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("estimate_gas", err, started)
	}()
	return c.backend.EstimateGas(ctx, msg)
}

// SendTransaction submits a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("send_transaction", err, started)
	}()
	return c.backend.SendTransaction(ctx, tx)
}

// TransactionReceipt returns the receipt of a mined transaction or ethereum.NotFound.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return c.backend.TransactionReceipt(ctx, txHash)
}
