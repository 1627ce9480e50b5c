// Package wallet discovers signing accounts across wallet extensions.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"go.uber.org/zap"
)

var (
	// ErrNoExtensions is returned when no wallet extension is configured.
	ErrNoExtensions = errors.New("no wallet extensions found")
	// ErrNoAccounts is returned when extensions exist but expose no accounts.
	ErrNoAccounts = errors.New("no accounts found in wallet")
	// ErrUnknownExtension is returned when an account names an extension that is not enabled.
	ErrUnknownExtension = errors.New("unknown wallet extension")
	// ErrUnknownAccount is returned when an address is not exposed by any extension.
	ErrUnknownAccount = errors.New("unknown wallet account")
)

// Connector enumerates extensions and their accounts.
type Connector struct {
	extensions []Extension
	logger     *zap.Logger
}

// NewConnector creates a connector over the given extensions.
func NewConnector(logger *zap.Logger, extensions ...Extension) *Connector {
	return &Connector{
		extensions: extensions,
		logger:     logger.Named("wallet"),
	}
}

// Enable returns the names of the available extensions.
func (c *Connector) Enable() ([]string, error) {
	if len(c.extensions) == 0 {
		return nil, ErrNoExtensions
	}
	names := make([]string, 0, len(c.extensions))
	for _, ext := range c.extensions {
		names = append(names, ext.Name())
	}
	return names, nil
}

// Accounts lists the accounts of every extension in extension order.
func (c *Connector) Accounts(ctx context.Context) ([]model.Account, error) {
	if _, err := c.Enable(); err != nil {
		return nil, err
	}

	var accounts []model.Account
	for _, ext := range c.extensions {
		found, err := ext.Accounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("accounts of %s: %w", ext.Name(), err)
		}
		c.logger.Debug("extension accounts", zap.String("extension", ext.Name()), zap.Int("count", len(found)))
		accounts = append(accounts, found...)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

// Default returns the first account, the one selected when the wallet connects.
func (c *Connector) Default(ctx context.Context) (model.Account, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return model.Account{}, err
	}
	return accounts[0], nil
}

// SignerFor asks the account's source extension for a signer.
func (c *Connector) SignerFor(account model.Account) (Signer, error) {
	for _, ext := range c.extensions {
		if ext.Name() == account.Source {
			return ext.Signer(account.Address)
		}
	}
	return nil, fmt.Errorf("%q: %w", account.Source, ErrUnknownExtension)
}

// Lookup finds the account with the given address.
func (c *Connector) Lookup(ctx context.Context, address common.Address) (model.Account, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.Address == address {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("%s: %w", address.Hex(), ErrUnknownAccount)
}
