package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"crowdfund/internal/core/port"
)

// KeySigner signs with a local private key.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	signer  types.Signer
}

// NewKeySigner returns a signer for key on the given chain.
func NewKeySigner(key *ecdsa.PrivateKey, chainID *big.Int) *KeySigner {
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		signer:  types.LatestSignerForChainID(chainID),
	}
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

func (s *KeySigner) SignTx(_ context.Context, tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, s.signer, s.key)
}

// KeyRing resolves payers to the local signers it was loaded with.
type KeyRing struct {
	signers map[common.Address]*KeySigner
}

var _ port.SignerResolver = (*KeyRing)(nil)

// NewKeyRing parses hex encoded private keys, with or without 0x prefix.
func NewKeyRing(chainID *big.Int, hexKeys []string) (*KeyRing, error) {
	ring := &KeyRing{signers: make(map[common.Address]*KeySigner, len(hexKeys))}
	for i, hk := range hexKeys {
		hk = strings.TrimPrefix(strings.TrimSpace(hk), "0x")
		if hk == "" {
			continue
		}
		key, err := crypto.HexToECDSA(hk)
		if err != nil {
			return nil, fmt.Errorf("signer key %d: %w", i, err)
		}
		s := NewKeySigner(key, chainID)
		ring.signers[s.Address()] = s
	}
	return ring, nil
}

// Resolve returns the signer for payer or port.ErrUnauthorized.
func (r *KeyRing) Resolve(_ context.Context, payer common.Address) (port.Signer, error) {
	s, ok := r.signers[payer]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrUnauthorized, payer.Hex())
	}
	return s, nil
}

// Addresses lists the payers the ring can sign for.
func (r *KeyRing) Addresses() []common.Address {
	out := make([]common.Address, 0, len(r.signers))
	for addr := range r.signers {
		out = append(out, addr)
	}
	return out
}
