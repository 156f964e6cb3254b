package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"agritoken/config"
	"agritoken/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

// assetShareType tags QR payloads that point an investor at an asset.
const assetShareType = "asset_share"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	AssetID string `json:"asset_id"`
	TokenID string `json:"token_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

type Params struct {
	fx.In

	Config *config.Config
}

// New builds the QR code service from configuration.
func New(params Params) service.QRCodeService {
	cfg := params.Config.QRCode
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	return NewQRCodeService(cfg.Size, cfg.ErrorCorrectionLevel, cfg.BaseURL)
}

// NewQRCodeService creates a new QR code service instance. baseURL, when set,
// is embedded so a phone camera can open the asset page directly.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateAssetShareQR generates a PNG QR code for sharing an asset with investors
func (s *qrcodeService) GenerateAssetShareQR(assetID, tokenID string) ([]byte, error) {
	if assetID == "" {
		return nil, errors.New("asset id is required")
	}

	data := QRCodeData{
		AssetID: assetID,
		TokenID: tokenID,
		Type:    assetShareType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/assets/" + url.PathEscape(assetID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseAssetShareQR parses QR code data and returns the asset ID
func (s *qrcodeService) ParseAssetShareQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != assetShareType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.AssetID == "" {
		return "", errors.New("QR code has no asset id")
	}

	return data.AssetID, nil
}
