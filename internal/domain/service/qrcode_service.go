package service

import (
	"parkospace/internal/domain/entity"
)

// QRCodeService defines the interface for listing share codes
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the listing's navigation link
	GenerateListingQR(listing *entity.Listing) ([]byte, error)

	// ListingQRContent returns the text encoded in the listing's QR code
	ListingQRContent(listing *entity.Listing) string
}
