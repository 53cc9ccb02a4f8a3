package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"parkospace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ListingQRContent(t *testing.T) {
	service := NewQRCodeService(256, "M")

	withLink := &entity.Listing{GmapLink: " https://maps.app.goo.gl/xyz "}
	assert.Equal(t, "https://maps.app.goo.gl/xyz", service.ListingQRContent(withLink))

	withoutLink := &entity.Listing{Location: entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}}
	assert.Equal(t, "geo:12.971600,77.594600", service.ListingQRContent(withoutLink))
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small", 128},
		{"Default", 256},
		{"Large", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateListingQR(&entity.Listing{GmapLink: "https://maps.example/abc"})
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateListingQR_Nil(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateListingQR(nil)
	assert.Error(t, err)
}
