package web

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCode renders content as a QR code using half-block characters, two
// module rows per text line. Light modules are drawn as blocks so the code
// scans on a dark terminal background.
func QRCode(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("web: qr code: %w", err)
	}
	bitmap := q.Bitmap()

	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		top := bitmap[y]
		var bottom []bool
		if y+1 < len(bitmap) {
			bottom = bitmap[y+1]
		}
		for x := range top {
			upper := !top[x]
			lower := bottom != nil && !bottom[x]
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String(), nil
}
