package voucher

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // phone cameras deliver JPEG
	"image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// QRSize is the side of the generated PNG in pixels.
const QRSize = 256

var ErrEmptyCode = errors.New("empty code")

// EncodeForScan renders code as a PNG QR code.
func EncodeForScan(code string) ([]byte, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: decoder.ErrorCorrectionLevel_M,
	}

	matrix, err := qrcode.NewQRCodeWriter().Encode(code, gozxing.BarcodeFormat_QR_CODE, QRSize, QRSize, hints)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	buf := new(bytes.Buffer)

	err = png.Encode(buf, matrix)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeScan reads the code back from a PNG produced by EncodeForScan or a PNG/JPEG camera capture.
func DecodeScan(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("binarize image: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("decode qr: %w", err)
	}

	return result.GetText(), nil
}
