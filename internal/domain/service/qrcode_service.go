package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAssetShareQR generates a QR code investors can scan to open an asset
	GenerateAssetShareQR(assetID, tokenID string) ([]byte, error)

	// ParseAssetShareQR parses QR code data and returns the asset id
	ParseAssetShareQR(qrData string) (string, error)
}
