package qrcode

import (
	"fmt"
	"strings"

	"parkospace/internal/domain/entity"
	"parkospace/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ListingQRContent returns the listing's navigation link, or a geo URI when it has none
func (s *qrcodeService) ListingQRContent(listing *entity.Listing) string {
	if link := strings.TrimSpace(listing.GmapLink); link != "" {
		return link
	}

	return fmt.Sprintf("geo:%s", listing.Location.String())
}

// GenerateListingQR renders the listing's QR code as PNG
func (s *qrcodeService) GenerateListingQR(listing *entity.Listing) ([]byte, error) {
	if listing == nil {
		return nil, fmt.Errorf("listing is required")
	}

	qrCode, err := qrcode.New(s.ListingQRContent(listing), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
