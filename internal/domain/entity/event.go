package entity

import (
	"encoding/json"
	"time"

	"agritoken/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType tags the payload carried by an Event.
type EventType string

const (
	EventFarmerRegistered   EventType = "FARMER_REGISTERED"
	EventAssetTokenized     EventType = "ASSET_TOKENIZED"
	EventInvestmentMade     EventType = "INVESTMENT_MADE"
	EventFarmRated          EventType = "FARM_RATED"
	EventProfitDistributed  EventType = "PROFIT_DISTRIBUTED"
	EventAssetStatusChanged EventType = "ASSET_STATUS_CHANGED"
	EventSystemInit         EventType = "SYSTEM_INIT"
)

// Event is the envelope appended to the event log. Data holds the full snapshot
// of the entity the event announces.
type Event struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// NewEvent builds an envelope with a fresh id around payload.
func NewEvent(eventType EventType, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s payload", eventType)
	}

	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

// Decode unmarshals the event payload into v.
func (e *Event) Decode(v any) error {
	if len(e.Data) == 0 {
		return errors.Errorf("event %s has no data", e.ID)
	}

	return errors.Wrapf(json.Unmarshal(e.Data, v), "decode %s payload", e.Type)
}

// ParseEvent decodes a raw log payload into an envelope.
func ParseEvent(raw []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, errors.Wrap(err, "parse event envelope")
	}
	if ev.ID == "" || ev.Type == "" {
		return nil, errors.New("event envelope is missing id or type")
	}

	return &ev, nil
}

// InvestmentAssetRef is the asset context carried with an investment event.
type InvestmentAssetRef struct {
	CropType   string `json:"cropType"`
	FarmerName string `json:"farmerName"`
}

// InvestmentMade is the payload of EventInvestmentMade.
type InvestmentMade struct {
	Investment
	Asset InvestmentAssetRef `json:"asset"`
}

// FarmRated is the payload of EventFarmRated.
type FarmRated struct {
	FarmerID      string  `json:"farmerId"`
	InvestorID    string  `json:"investorId"`
	Rating        int64   `json:"rating"`
	AverageRating float64 `json:"averageRating"`
}

// ProfitDistributed is the payload of EventProfitDistributed.
type ProfitDistributed struct {
	AssetID       string          `json:"assetId"`
	InvestmentID  string          `json:"investmentId"`
	InvestorID    string          `json:"investorId"`
	TokenAmount   int64           `json:"tokenAmount"`
	ProfitPerUnit decimal.Decimal `json:"profitPerUnit"`
	Profit        decimal.Decimal `json:"profit"`
	Timestamp     time.Time       `json:"timestamp"`
}

// AssetStatusChanged is the payload of EventAssetStatusChanged.
type AssetStatusChanged struct {
	AssetID string      `json:"assetId"`
	Status  AssetStatus `json:"status"`
}

// SystemInit is the payload of EventSystemInit.
type SystemInit struct {
	Message  string `json:"message"`
	TopicRef string `json:"topicRef"`
}
