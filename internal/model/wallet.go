// Package model defines the core domain records used throughout the application.
package model

import "github.com/google/uuid"

// Wallet represents a named store of money with a balance and currency.
type Wallet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
	Default     bool    `json:"default"`
	HideBalance bool    `json:"hide_balance"`
}

// FreeWalletLimit is the maximum wallet count on the free plan.
const FreeWalletLimit = 3

// WalletIcons are the icon names offered when creating a wallet.
var WalletIcons = []string{
	"wallet", "landmark", "credit-card", "piggy-bank", "banknote",
	"coins", "circle-dollar-sign", "bitcoin", "euro", "pound-sterling",
}

// NewID mints an opaque unique identifier for an entity.
func NewID() string {
	return uuid.NewString()
}
