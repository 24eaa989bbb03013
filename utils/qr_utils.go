// utils/qr_utils.go
package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// GenerateCheckInQR encodes a booking check-in reference as a QR code and
// returns it as a PNG data URL, ready to embed in the booking document.
func GenerateCheckInQR(kind, bookingID string) (string, error) {
	content := fmt.Sprintf("localexplorer://checkin/%s/%s", kind, bookingID)

	qrCode, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	qrCode, err = barcode.Scale(qrCode, 200, 200)
	if err != nil {
		return "", fmt.Errorf("failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrCode); err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
