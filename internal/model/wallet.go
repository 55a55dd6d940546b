package model

import "time"

// Wallet is a named fund source or sink that a transaction may be
// attributed to. Exactly one wallet is the default target for new
// transactions.
type Wallet struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Icon      string
	Color     string
	IsDefault bool
}
