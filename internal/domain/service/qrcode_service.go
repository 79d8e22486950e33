package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSubscriptionQR generates a QR code for author subscription
	GenerateSubscriptionQR(authorID uuid.UUID) ([]byte, error)

	// ParseSubscriptionQR parses QR code data and returns the author ID
	ParseSubscriptionQR(qrData string) (uuid.UUID, error)
}
