package pricing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const qrSize = "200x200"

type Payee struct {
	VPA      string
	Name     string
	Currency string
}

// PaymentReference builds the UPI deep link encoded into the payment QR code.
func PaymentReference(payee Payee, amount int) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=%s", payee.VPA, payee.Name, amount, payee.Currency)
}

// QRCodeURL returns an image url rendering payload as a QR code.
func QRCodeURL(endpoint, payload string) string {
	query := url.Values{}
	query.Set("size", qrSize)
	query.Set("data", payload)

	return endpoint + "?" + query.Encode()
}

// FormatAmount groups thousands with commas, e.g. 12500 -> "12,500".
func FormatAmount(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)

	var b strings.Builder

	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + b.String()
}
