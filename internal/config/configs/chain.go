package configs

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain describes the EVM network and the campaign contract.
type Chain struct {
	RPCURL string `env:"RPC_URL" envDefault:"http://localhost:8545"`
	// ChainID must match the chain served by RPCURL. Defaults to Sepolia.
	ChainID         int64  `env:"ID" envDefault:"11155111"`
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// SignerKeys are hex private keys of the wallets the service may
	// contribute from.
	SignerKeys  []string      `env:"SIGNER_KEYS" envSeparator:","`
	IPFSGateway string        `env:"IPFS_GATEWAY" envDefault:"https://ipfs.io/ipfs/"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"10s"`
}

// Validate checks the contract address when one is configured.
func (c Chain) Validate() error {
	if c.ContractAddress != "" && !common.IsHexAddress(c.ContractAddress) {
		return errors.New("CHAIN_CONTRACT_ADDRESS is not a hex address")
	}
	if c.ChainID <= 0 {
		return errors.New("CHAIN_ID must be positive")
	}
	return nil
}

func (c Chain) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

func (c Chain) ID() *big.Int {
	return big.NewInt(c.ChainID)
}
