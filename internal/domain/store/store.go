// Package store holds the in-memory domain model. It is a derived cache of the
// event log: every mutation goes through Apply, both for live operations and for
// startup replay.
package store

import (
	"slices"
	"sync"

	"agritoken/internal/domain/entity"
)

// Counts is a snapshot of entity cardinalities.
type Counts struct {
	Farmers     int `json:"farmers"`
	Assets      int `json:"assets"`
	Investments int `json:"investments"`
}

// Store owns the domain maps. The zero value is not usable; call New.
type Store struct {
	mu          sync.RWMutex
	farmers     map[string]*entity.Farmer
	assets      map[string]*entity.TokenizedAsset
	investments map[string]*entity.Investment
	ratings     map[string]*entity.FarmRating
	applied     map[string]struct{}
}

// New returns an empty store.
func New() *Store {
	return &Store{
		farmers:     make(map[string]*entity.Farmer),
		assets:      make(map[string]*entity.TokenizedAsset),
		investments: make(map[string]*entity.Investment),
		ratings:     make(map[string]*entity.FarmRating),
		applied:     make(map[string]struct{}),
	}
}

// Farmer returns a copy of the farmer with the given id.
func (s *Store) Farmer(id string) (*entity.Farmer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.farmers[entity.NormalizeAccountID(id)]

	return f.Clone(), ok
}

// Farmers returns copies of all farmers ordered by creation time.
func (s *Store) Farmers() []*entity.Farmer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Farmer, 0, len(s.farmers))
	for _, f := range s.farmers {
		out = append(out, f.Clone())
	}
	slices.SortFunc(out, func(a, b *entity.Farmer) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out
}

// Asset returns a copy of the asset with the given id.
func (s *Store) Asset(id string) (*entity.TokenizedAsset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]

	return a.Clone(), ok
}

// Assets returns copies of all assets ordered by creation time.
func (s *Store) Assets() []*entity.TokenizedAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.TokenizedAsset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, a.Clone())
	}
	slices.SortFunc(out, func(a, b *entity.TokenizedAsset) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return compareStrings(a.ID, b.ID)
	})

	return out
}

// Investment returns a copy of the investment with the given id.
func (s *Store) Investment(id string) (*entity.Investment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.investments[id]

	return i.Clone(), ok
}

// Investments returns copies of all investments ordered by timestamp.
func (s *Store) Investments() []*entity.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Investment, 0, len(s.investments))
	for _, i := range s.investments {
		out = append(out, i.Clone())
	}
	slices.SortFunc(out, func(a, b *entity.Investment) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return compareStrings(a.ID, b.ID)
	})

	return out
}

// InvestmentsByAsset returns the investments tied to assetID ordered by timestamp.
func (s *Store) InvestmentsByAsset(assetID string) []*entity.Investment {
	return filterInvestments(s.Investments(), func(i *entity.Investment) bool {
		return i.AssetID == assetID
	})
}

// InvestmentsByInvestor returns the investments made by accountID ordered by timestamp.
func (s *Store) InvestmentsByInvestor(accountID string) []*entity.Investment {
	id := entity.NormalizeAccountID(accountID)

	return filterInvestments(s.Investments(), func(i *entity.Investment) bool {
		return i.InvestorAccountID == id
	})
}

// Rating returns the rating aggregate of a farmer; the zero aggregate when unrated.
func (s *Store) Rating(farmerID string) entity.FarmRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := entity.NormalizeAccountID(farmerID)
	if r, ok := s.ratings[id]; ok {
		return *r
	}

	return entity.FarmRating{FarmerID: id}
}

// Counts returns the number of farmers, assets and investments.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Farmers:     len(s.farmers),
		Assets:      len(s.assets),
		Investments: len(s.investments),
	}
}

// Applied reports whether the event id has already been folded into the store.
func (s *Store) Applied(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.applied[eventID]

	return ok
}

func filterInvestments(in []*entity.Investment, keep func(*entity.Investment) bool) []*entity.Investment {
	out := make([]*entity.Investment, 0, len(in))
	for _, i := range in {
		if keep(i) {
			out = append(out, i)
		}
	}

	return out
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
