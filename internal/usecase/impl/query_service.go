package impl

import (
	"context"
	"fmt"
	"strings"

	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	"agritoken/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	healthStatusOK    = "OK"
	topicNotInitiated = "Not initialized"
	unknownAssetField = "Unknown"
)

type queryService struct {
	store         *store.Store
	ledger        service.Ledger
	eventLog      service.EventLog
	qrcodeService service.QRCodeService
}

// QueryServiceParams holds dependencies for QueryService, injected by Fx.
type QueryServiceParams struct {
	fx.In

	Store         *store.Store
	Ledger        service.Ledger
	EventLog      service.EventLog
	QRCodeService service.QRCodeService
}

// NewQueryService creates a new query service instance
func NewQueryService(params QueryServiceParams) usecase.QueryUsecase {
	return &queryService{
		store:         params.Store,
		ledger:        params.Ledger,
		eventLog:      params.EventLog,
		qrcodeService: params.QRCodeService,
	}
}

// ListAssets returns every asset with its farmer's rating, oldest first.
func (s *queryService) ListAssets(_ context.Context) ([]usecase.AssetListing, error) {
	assets := s.store.Assets()
	listings := make([]usecase.AssetListing, 0, len(assets))

	for _, asset := range assets {
		rating := s.store.Rating(asset.FarmerID)
		listing := usecase.AssetListing{
			TokenizedAsset: asset,
			Rating:         usecase.NotRated,
			RatingCount:    rating.RatingCount,
		}
		if rating.Rated() {
			listing.Rating = fmt.Sprintf("%.1f", rating.Average())
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func (s *queryService) ListFarmerAssets(_ context.Context, farmerID string) ([]*entity.TokenizedAsset, error) {
	id := entity.NormalizeAccountID(farmerID)
	assets := s.store.Assets()

	out := make([]*entity.TokenizedAsset, 0)
	for _, asset := range assets {
		if asset.FarmerID == id {
			out = append(out, asset)
		}
	}

	return out, nil
}

// ListInvestments returns the account's investments with asset context; assets
// missing from the store are reported as Unknown.
func (s *queryService) ListInvestments(_ context.Context, accountID string) ([]usecase.InvestmentListing, error) {
	investments := s.store.InvestmentsByInvestor(accountID)
	listings := make([]usecase.InvestmentListing, 0, len(investments))

	for _, inv := range investments {
		listing := usecase.InvestmentListing{
			Investment: inv,
			Asset:      usecase.InvestmentAsset{CropType: unknownAssetField, FarmerName: unknownAssetField},
			FarmerName: unknownAssetField,
		}
		if asset, ok := s.store.Asset(inv.AssetID); ok {
			listing.Asset = usecase.InvestmentAsset{
				CropType:   asset.CropType,
				FarmerName: asset.FarmerName,
				TokenID:    asset.TokenID,
				Status:     string(asset.Status),
			}
			listing.FarmerName = asset.FarmerName
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func (s *queryService) GetUser(_ context.Context, accountID string) (*entity.Farmer, error) {
	farmer, ok := s.store.Farmer(accountID)
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}

	return farmer, nil
}

func (s *queryService) GetBalance(ctx context.Context, accountID string) (*service.Balance, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accountId is required")
	}

	balance, err := s.ledger.QueryBalance(ctx, strings.TrimSpace(accountID))
	if err != nil {
		return nil, domainerrors.NewLedgerError(err, "query balance")
	}

	return balance, nil
}

func (s *queryService) Health(_ context.Context) (*usecase.HealthReport, error) {
	topic := s.eventLog.TopicRef()
	if topic == "" {
		topic = topicNotInitiated
	}

	return &usecase.HealthReport{
		Status:   healthStatusOK,
		Network:  s.ledger.Network(),
		Operator: s.ledger.TreasuryAccount(),
		TopicID:  topic,
		Stats:    s.store.Counts(),
	}, nil
}

func (s *queryService) AssetShareQR(_ context.Context, assetID string) ([]byte, error) {
	asset, ok := s.store.Asset(assetID)
	if !ok {
		return nil, domainerrors.ErrAssetNotFound
	}

	png, err := s.qrcodeService.GenerateAssetShareQR(asset.ID, asset.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate asset share QR code")
	}

	return png, nil
}
