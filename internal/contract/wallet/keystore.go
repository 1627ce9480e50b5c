package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

// KeystoreExtension exposes the accounts of an encrypted keystore directory.
type KeystoreExtension struct {
	name       string
	ks         *keystore.KeyStore
	passphrase string
}

// OpenKeystore opens the keystore directory with standard scrypt parameters.
func OpenKeystore(dir string) *keystore.KeyStore {
	return keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
}

// NewKeystoreExtension creates an extension unlocking keys with passphrase on every signature.
func NewKeystoreExtension(name string, ks *keystore.KeyStore, passphrase string) *KeystoreExtension {
	return &KeystoreExtension{name: name, ks: ks, passphrase: passphrase}
}

// Name returns the extension name.
func (e *KeystoreExtension) Name() string { return e.name }

// Accounts lists the keystore accounts.
func (e *KeystoreExtension) Accounts(context.Context) ([]model.Account, error) {
	list := e.ks.Accounts()
	out := make([]model.Account, 0, len(list))
	for i, a := range list {
		out = append(out, model.Account{
			Address: a.Address,
			Name:    fmt.Sprintf("%s #%d", e.name, i+1),
			Source:  e.name,
		})
	}
	return out, nil
}

// Signer returns a signer for address.
func (e *KeystoreExtension) Signer(address common.Address) (Signer, error) {
	account := accounts.Account{Address: address}
	if !e.ks.HasAddress(address) {
		return nil, fmt.Errorf("%s: %w", address.Hex(), ErrUnknownAccount)
	}
	return keystoreSigner{ks: e.ks, account: account, passphrase: e.passphrase}, nil
}

type keystoreSigner struct {
	ks         *keystore.KeyStore
	account    accounts.Account
	passphrase string
}

func (s keystoreSigner) Address() common.Address { return s.account.Address }

func (s keystoreSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := s.ks.SignTxWithPassphrase(s.account, s.passphrase, tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("keystore sign: %w", err)
	}
	return signed, nil
}
