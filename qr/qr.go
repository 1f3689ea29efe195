// Package qr renders the per-table deep links that guests scan to open
// the web client at a specific restaurant table.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// TableLink builds the frontend deep link for a restaurant table.
func TableLink(frontendURL string, restaurantID uint, tableNumber int) string {
	return fmt.Sprintf("%s/restaurant/%d/table/%d", frontendURL, restaurantID, tableNumber)
}

// DataURI encodes the given link as a PNG QR code wrapped in a data URI.
// Highest error correction so codes survive printing and table wear.
func DataURI(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Highest, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
