package upi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"kirana/billing"
	"kirana/shop"
)

// DefaultQRSize is the pixel width of the generated code. 256px scans fine
// from a phone at invoice print size.
const DefaultQRSize = 256

// PaymentRequest describes a requested UPI collect payment. Amount carries
// the bill's grand total; the two must never diverge.
type PaymentRequest struct {
	PayeeID   string
	PayeeName string
	Amount    float64
	Currency  string
	Note      string
}

// ForBill builds the payment request for a bill snapshot, reading the amount
// from the same GrandTotal the invoice renders.
func ForBill(cfg shop.Config, bill billing.Bill) PaymentRequest {
	return PaymentRequest{
		PayeeID:   cfg.UPIID,
		PayeeName: cfg.PayeeName,
		Amount:    bill.GrandTotal,
		Currency:  "INR",
		Note:      "Bill Payment",
	}
}

// URI renders the upi://pay deep link. Parameter order is fixed; some scanner
// apps reject reordered queries.
func (p PaymentRequest) URI() string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=%s",
		p.PayeeID,
		escape(p.PayeeName),
		strconv.FormatFloat(p.Amount, 'f', 2, 64),
		p.Currency,
		escape(p.Note),
	)
}

// QRCode rasterizes the request URI as a PNG at the given pixel size. Error
// correction is the highest level so the code survives print artifacts and
// partial damage.
func (p PaymentRequest) QRCode(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(p.URI(), qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr: %w", err)
	}
	return png, nil
}

// escape percent-encodes a query value with %20 for spaces; UPI apps do not
// understand the form-encoded plus.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
