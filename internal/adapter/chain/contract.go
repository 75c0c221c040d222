package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Backend is the subset of *ethclient.Client used by CampaignContract.
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// CampaignContract implements port.CampaignContract on top of an Ethereum
// JSON-RPC backend.
type CampaignContract struct {
	backend Backend
	abi     abi.ABI
	address common.Address
	chainID *big.Int
	// gasMarginPercent is added on top of the node's gas estimate.
	gasMarginPercent uint64
}

var _ port.CampaignContract = (*CampaignContract)(nil)

// NewCampaignContract binds the contract at address on the given chain.
func NewCampaignContract(backend Backend, address common.Address, chainID *big.Int) (*CampaignContract, error) {
	parsed, err := abi.JSON(strings.NewReader(campaignABI))
	if err != nil {
		return nil, fmt.Errorf("parse campaign abi: %w", err)
	}
	return &CampaignContract{
		backend:          backend,
		abi:              parsed,
		address:          address,
		chainID:          new(big.Int).Set(chainID),
		gasMarginPercent: 20,
	}, nil
}

// Dial connects to the configured RPC endpoint and checks that it serves the
// configured chain. The caller must close the returned client.
func Dial(ctx context.Context, cfg configs.Chain) (*ethclient.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, cfg.RPCURL)
	if err != nil {
		return nil, err
	}
	id, err := client.ChainID(dialCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	if id.Int64() != cfg.ChainID {
		client.Close()
		return nil, fmt.Errorf("rpc serves chain %s, expected %d", id, cfg.ChainID)
	}
	return client, nil
}

// GetCampaigns calls getCampaigns and decodes every tuple.
func (c *CampaignContract) GetCampaigns(ctx context.Context) ([]domain.RawCampaign, error) {
	data, err := c.abi.Pack(methodGetCampaigns)
	if err != nil {
		return nil, err
	}
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", methodGetCampaigns, err)
	}
	var tuples []campaignTuple
	if err = c.abi.UnpackIntoInterface(&tuples, methodGetCampaigns, out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", methodGetCampaigns, err)
	}
	campaigns := make([]domain.RawCampaign, 0, len(tuples))
	for _, t := range tuples {
		campaigns = append(campaigns, domain.RawCampaign{
			CampaignID:      t.CampaignId,
			Owner:           t.Owner,
			SmartWallet:     t.SmartWallet,
			Title:           t.Title,
			Description:     t.Description,
			Target:          t.Target,
			Deadline:        t.Deadline,
			AmountCollected: t.AmountCollected,
			Image:           t.Image,
			Category:        t.Category,
			Donators:        t.Donators,
			Donations:       t.Donations,
		})
	}
	return campaigns, nil
}

// BuildDonation prepares an unsigned donateToCampaign transaction sending
// amountWei.
func (c *CampaignContract) BuildDonation(ctx context.Context, from common.Address, campaignID int64, amountWei *big.Int) (*types.Transaction, error) {
	data, err := c.abi.Pack(methodDonate, big.NewInt(campaignID))
	if err != nil {
		return nil, err
	}
	return c.buildTx(ctx, from, amountWei, data)
}

// BuildCreateCampaign prepares an unsigned createCampaign transaction.
func (c *CampaignContract) BuildCreateCampaign(ctx context.Context, from common.Address, p domain.CampaignParams) (*types.Transaction, error) {
	if p.GoalWei == nil || p.GoalWei.Sign() <= 0 {
		return nil, errors.New("campaign goal must be positive")
	}
	data, err := c.abi.Pack(methodCreate,
		p.Owner, p.Wallet, p.Title, p.Description, p.GoalWei, big.NewInt(p.Deadline), p.Image)
	if err != nil {
		return nil, err
	}
	return c.buildTx(ctx, from, new(big.Int), data)
}

// buildTx fills in nonce, gas and fees for a call to the contract. EIP-1559
// fees are used when the latest header carries a base fee, legacy gas
// pricing otherwise.
func (c *CampaignContract) buildTx(ctx context.Context, from common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &c.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * c.gasMarginPercent / 100

	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("latest header: %w", err)
	}
	if head.BaseFee == nil {
		price, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: price,
			Gas:      gas,
			To:       &c.address,
			Value:    value,
			Data:     data,
		}), nil
	}

	tip, err := c.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas tip: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &c.address,
		Value:     value,
		Data:      data,
	}), nil
}

// Send broadcasts a signed transaction.
func (c *CampaignContract) Send(ctx context.Context, tx *types.Transaction) error {
	return c.backend.SendTransaction(ctx, tx)
}

// Receipt looks up the receipt of hash. A transaction the node does not know
// a receipt for yet yields port.ErrReceiptNotFound.
func (c *CampaignContract) Receipt(ctx context.Context, hash common.Hash) (*domain.Receipt, error) {
	r, err := c.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, port.ErrReceiptNotFound
	}
	if err != nil {
		return nil, err
	}
	receipt := &domain.Receipt{
		TxHash:  r.TxHash,
		GasUsed: r.GasUsed,
		Success: r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = r.BlockNumber.Uint64()
	}
	return receipt, nil
}
