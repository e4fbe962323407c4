package qrcode

import (
	"net/url"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

// GenerateRestaurantQR encodes the restaurant's profile page, or a geo URI when it has none
func (s *qrcodeService) GenerateRestaurantQR(restaurant entity.Restaurant) ([]byte, error) {
	content := Content(restaurant)
	if content == "" {
		return nil, errors.Errorf("restaurant %q has nothing to encode", restaurant.ID)
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// Content returns the text encoded in a restaurant's QR code
func Content(restaurant entity.Restaurant) string {
	if restaurant.ExternalProfileURL != "" {
		return restaurant.ExternalProfileURL
	}
	if !restaurant.Coordinate.IsValid() {
		return ""
	}

	content := "geo:" + restaurant.Coordinate.Locator()
	if restaurant.Name != "" {
		content += "?q=" + url.QueryEscape(restaurant.Name)
	}

	return content
}
