package service

import (
	"lunchradar/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateRestaurantQR generates a PNG QR code pointing at the restaurant
	GenerateRestaurantQR(restaurant entity.Restaurant) ([]byte, error)
}
