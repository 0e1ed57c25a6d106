package models

import "time"

// LoyaltyTier segments returning clients for discounts.
type LoyaltyTier string

const (
	TierStandard LoyaltyTier = "standard"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierVIP      LoyaltyTier = "vip"
)

// Client is a studio customer.
type Client struct {
	ID              string      `bson:"id" json:"id"`
	Email           string      `bson:"email" json:"email"`
	Phone           string      `bson:"phone,omitempty" json:"phone,omitempty"`
	FirstName       string      `bson:"firstName" json:"firstName"`
	LastName        string      `bson:"lastName,omitempty" json:"lastName,omitempty"`
	DateOfBirth     string      `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	PreferredArtist string      `bson:"preferredArtist,omitempty" json:"preferredArtist,omitempty"`
	LoyaltyPoints   int         `bson:"loyaltyPoints" json:"loyaltyPoints"`
	LoyaltyTier     LoyaltyTier `bson:"loyaltyTier" json:"loyaltyTier"`
	VisitCount      int         `bson:"visitCount" json:"visitCount"`
	TotalSpent      float64     `bson:"totalSpent" json:"totalSpent"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}
