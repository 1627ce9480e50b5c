package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

// ErrInvalidPrivateKey is returned for keys that are not 32 hex-encoded bytes.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// PrivateKeyExtension exposes a single account backed by a raw private key.
type PrivateKeyExtension struct {
	name    string
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewPrivateKeyExtension parses a hex private key, with or without 0x prefix.
func NewPrivateKeyExtension(name, hexKey string) (*PrivateKeyExtension, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return &PrivateKeyExtension{
		name:    name,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Name returns the extension name.
func (e *PrivateKeyExtension) Name() string { return e.name }

// Accounts returns the single account.
func (e *PrivateKeyExtension) Accounts(context.Context) ([]model.Account, error) {
	return []model.Account{{Address: e.address, Name: e.name, Source: e.name}}, nil
}

// Signer returns the key's signer when address matches.
func (e *PrivateKeyExtension) Signer(address common.Address) (Signer, error) {
	if address != e.address {
		return nil, fmt.Errorf("%s: %w", address.Hex(), ErrUnknownAccount)
	}
	return keySigner{key: e.key, address: e.address}, nil
}

type keySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func (s keySigner) Address() common.Address { return s.address }

func (s keySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return signed, nil
}
