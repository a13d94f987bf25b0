package printing

import (
	"encoding/base64"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// orderQR encodes the human-facing order number as a base64 PNG so every
// printed variant carries a scannable lookup reference.
func orderQR(orderNumber int64) (string, error) {
	png, err := qrcode.Encode("orden:"+strconv.FormatInt(orderNumber, 10), qrcode.Medium, 128)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
