package qrcode

import (
	"net/url"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the http and qrcode config sections.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := strings.TrimRight(cfg.HTTP.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		baseURL:              baseURL,
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShopURL builds the public page link, escaping the name as a single path segment.
func (s *qrcodeService) ShopURL(shopName string) string {
	return s.baseURL + "/shop/" + url.PathEscape(shopName)
}

// GenerateShopQR encodes ShopURL as a PNG image.
func (s *qrcodeService) GenerateShopQR(shopName string) ([]byte, error) {
	if strings.TrimSpace(shopName) == "" {
		return nil, errors.New("shop name is required")
	}

	qrCode, err := qrcode.New(s.ShopURL(shopName), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
