package cli

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
	"golang.design/x/clipboard"
)

// copyToClipboard puts text on the system clipboard.
func copyToClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// writeQRCode encodes text as a PNG QR code.
func writeQRCode(text, filename string) error {
	if err := qr.WriteFile(text, qr.Medium, 256, filename); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
