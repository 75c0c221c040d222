package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a registered wallet owner. SmartWalletAddress is the identity
// carried in session tokens.
type User struct {
	ID                 uuid.UUID `json:"id"`
	WalletAddress      string    `json:"walletAddress"`
	SmartWalletAddress string    `json:"smartWalletAddress"`
	Username           string    `json:"username,omitempty"`
	Email              string    `json:"email,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DraftStatusActive is the only status assigned to new drafts.
const DraftStatusActive = "ACTIVE"

// CampaignDraft is a campaign recorded in the database before or alongside
// its on-chain creation.
type CampaignDraft struct {
	ID          uuid.UUID       `json:"id"`
	CreatorID   uuid.UUID       `json:"creatorId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	GoalAmount  decimal.Decimal `json:"goalAmount"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Deadline    time.Time       `json:"deadline"`
	IPFSHash    string          `json:"ipfsHash"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
