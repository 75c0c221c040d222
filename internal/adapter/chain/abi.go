package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// campaignABI covers the contract methods the service uses.
const campaignABI = `[
  {
    "type": "function",
    "name": "getCampaigns",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [
      {
        "name": "",
        "type": "tuple[]",
        "internalType": "struct CrowdFunding.Campaign[]",
        "components": [
          {"name": "campaignId", "type": "uint256"},
          {"name": "owner", "type": "address"},
          {"name": "smartWallet", "type": "address"},
          {"name": "title", "type": "string"},
          {"name": "description", "type": "string"},
          {"name": "target", "type": "uint256"},
          {"name": "deadline", "type": "uint256"},
          {"name": "amountCollected", "type": "uint256"},
          {"name": "image", "type": "string"},
          {"name": "category", "type": "string"},
          {"name": "donators", "type": "address[]"},
          {"name": "donations", "type": "uint256[]"}
        ]
      }
    ]
  },
  {
    "type": "function",
    "name": "donateToCampaign",
    "stateMutability": "payable",
    "inputs": [{"name": "_id", "type": "uint256"}],
    "outputs": []
  },
  {
    "type": "function",
    "name": "createCampaign",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "owner", "type": "address"},
      {"name": "wallet", "type": "address"},
      {"name": "title", "type": "string"},
      {"name": "description", "type": "string"},
      {"name": "goal", "type": "uint256"},
      {"name": "deadline", "type": "uint256"},
      {"name": "image", "type": "string"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  }
]`

const (
	methodGetCampaigns = "getCampaigns"
	methodDonate       = "donateToCampaign"
	methodCreate       = "createCampaign"
)

// campaignTuple is the Go shape of one getCampaigns element. Field names and
// order follow the ABI components so the abi package can copy into it.
type campaignTuple struct {
	CampaignId      *big.Int //nolint:revive
	Owner           common.Address
	SmartWallet     common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
	Category        string
	Donators        []common.Address
	Donations       []*big.Int
}
