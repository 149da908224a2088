package llmcatalog

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var perMillion = decimal.NewFromInt(1_000_000)

// FormatPricePerMillion renders a per-token price as a price per million tokens
// ("$2.5" for 0.0000025), without trailing zeros.
func FormatPricePerMillion(price decimal.Decimal) string {
	return "$" + price.Mul(perMillion).String()
}

// FormatPricePerInvocation renders a per-request price without trailing zeros.
func FormatPricePerInvocation(price decimal.Decimal) string {
	return "$" + price.String()
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatMaxTokens renders a completion limit; zero means no limit.
func FormatMaxTokens(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return FormatCount(n)
}

// FormatTimestamp renders t in RFC 2822 form.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC1123Z)
}
