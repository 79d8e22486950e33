// Package qrcode renders and decodes author subscription QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bookz/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload.
type QRCodeData struct {
	AuthorID string `json:"author_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateSubscriptionQR generates a QR code for subscribing to an author.
func (s *qrcodeService) GenerateSubscriptionQR(authorID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		AuthorID: authorID.String(),
		Type:     "subscription",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseSubscriptionQR parses QR code data and returns the author ID.
func (s *qrcodeService) ParseSubscriptionQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "subscription" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	authorID, err := uuid.Parse(data.AuthorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse author ID: %w", err)
	}

	return authorID, nil
}
