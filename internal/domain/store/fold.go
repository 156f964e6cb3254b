package store

import (
	"agritoken/internal/domain/entity"
	"agritoken/internal/errors"
)

var (
	// ErrUnknownEventType is returned for event types the fold does not understand.
	ErrUnknownEventType = errors.New("unknown event type")
	// ErrStatusRegression is returned when an event would move an asset backwards in its lifecycle.
	ErrStatusRegression = errors.New("asset status cannot regress")
)

// Apply folds one event into the store. It is the only mutation path and is used
// identically by live operations and replay. Events are deduplicated by id:
// applied is false when the event had already been folded in.
func (s *Store) Apply(ev *entity.Event) (applied bool, err error) {
	if ev == nil || ev.ID == "" {
		return false, errors.New("event without id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applied[ev.ID]; ok {
		return false, nil
	}

	switch ev.Type {
	case entity.EventFarmerRegistered:
		err = s.applyFarmerRegistered(ev)
	case entity.EventAssetTokenized:
		err = s.applyAssetTokenized(ev)
	case entity.EventInvestmentMade:
		err = s.applyInvestmentMade(ev)
	case entity.EventFarmRated:
		err = s.applyFarmRated(ev)
	case entity.EventAssetStatusChanged:
		err = s.applyAssetStatusChanged(ev)
	case entity.EventProfitDistributed, entity.EventSystemInit:
		// informational
	default:
		err = errors.Wrapf(ErrUnknownEventType, "%q", ev.Type)
	}
	if err != nil {
		return false, err
	}

	s.applied[ev.ID] = struct{}{}

	return true, nil
}

// applyFarmerRegistered upserts the farmer; last writer wins.
func (s *Store) applyFarmerRegistered(ev *entity.Event) error {
	var f entity.Farmer
	if err := ev.Decode(&f); err != nil {
		return err
	}
	f.ID = entity.NormalizeAccountID(f.ID)
	if f.ID == "" {
		return errors.Errorf("event %s: farmer without id", ev.ID)
	}
	if f.Assets == nil {
		f.Assets = []string{}
	}
	s.farmers[f.ID] = &f

	return nil
}

func (s *Store) applyAssetTokenized(ev *entity.Event) error {
	var a entity.TokenizedAsset
	if err := ev.Decode(&a); err != nil {
		return err
	}
	if a.ID == "" {
		return errors.Errorf("event %s: asset without id", ev.ID)
	}
	a.FarmerID = entity.NormalizeAccountID(a.FarmerID)
	s.assets[a.ID] = &a

	if farmer, ok := s.farmers[a.FarmerID]; ok && !farmer.HasAsset(a.ID) {
		farmer.Assets = append(farmer.Assets, a.ID)
		farmer.TotalTokens += a.YieldAmount
	}

	return nil
}

func (s *Store) applyInvestmentMade(ev *entity.Event) error {
	var payload entity.InvestmentMade
	if err := ev.Decode(&payload); err != nil {
		return err
	}
	inv := payload.Investment
	if inv.ID == "" {
		return errors.Errorf("event %s: investment without id", ev.ID)
	}
	inv.InvestorAccountID = entity.NormalizeAccountID(inv.InvestorAccountID)
	s.investments[inv.ID] = &inv

	if asset, ok := s.assets[inv.AssetID]; ok {
		asset.RemainingAmount -= inv.TokenAmount
		if asset.RemainingAmount <= 0 {
			asset.RemainingAmount = 0
			if asset.Status == entity.AssetStatusOpen {
				asset.Status = entity.AssetStatusFullyInvested
			}
		}
	}

	return nil
}

func (s *Store) applyFarmRated(ev *entity.Event) error {
	var payload entity.FarmRated
	if err := ev.Decode(&payload); err != nil {
		return err
	}
	id := entity.NormalizeAccountID(payload.FarmerID)
	r, ok := s.ratings[id]
	if !ok {
		r = &entity.FarmRating{FarmerID: id}
		s.ratings[id] = r
	}
	r.TotalRating += payload.Rating
	r.RatingCount++

	return nil
}

func (s *Store) applyAssetStatusChanged(ev *entity.Event) error {
	var payload entity.AssetStatusChanged
	if err := ev.Decode(&payload); err != nil {
		return err
	}
	asset, ok := s.assets[payload.AssetID]
	if !ok {
		return nil
	}
	if !asset.Status.CanTransitionTo(payload.Status) {
		return errors.Wrapf(ErrStatusRegression, "asset %s: %s -> %s", asset.ID, asset.Status, payload.Status)
	}
	asset.Status = payload.Status

	return nil
}
