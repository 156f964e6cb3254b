// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"
)

// Farmer is a registered platform account. Investors register through the same
// record with a different role tag.
type Farmer struct {
	ID          string    `json:"id"`          // Lowercase ledger account identifier.
	Name        string    `json:"name"`        // Display name.
	NIN         string    `json:"nin"`         // National identification number.
	Location    string    `json:"location"`    // Free-form farm location.
	Phone       string    `json:"phone"`       // Contact phone number.
	Assets      []string  `json:"assets"`      // Tokenized asset ids owned by this farmer.
	TotalTokens int64     `json:"totalTokens"` // Cumulative tokenized yield.
	Role        Role      `json:"role"`        // farmer or investor.
	CreatedAt   time.Time `json:"createdAt"`
}

// HasAsset reports whether the farmer already lists assetID.
func (f *Farmer) HasAsset(assetID string) bool {
	return slices.Contains(f.Assets, assetID)
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (f *Farmer) Clone() *Farmer {
	if f == nil {
		return nil
	}
	c := *f
	c.Assets = slices.Clone(f.Assets)

	return &c
}

// NormalizeAccountID lowercases and trims an externally supplied account id.
// Ledger identifiers are not guaranteed to arrive in a consistent case, so every
// map key in the system goes through this function.
func NormalizeAccountID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
