package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// currencySymbols maps ISO codes to display symbols; anything else renders
// as "<amount> <code>".
var currencySymbols = map[string]string{
	"CNY": "¥",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// formatAmount renders integer cents as a grouped decimal with a currency
// symbol, e.g. 123456 CNY -> "¥1,234.56".
func formatAmount(cents int64, currency string) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	grouped := groupThousands(whole)
	amount := fmt.Sprintf("%s.%02d", grouped, frac)
	if negative {
		amount = "-" + amount
	}

	code := strings.ToUpper(strings.TrimSpace(currency))
	if symbol, ok := currencySymbols[code]; ok {
		return symbol + amount
	}
	if code == "" {
		return amount
	}
	return amount + " " + code
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// truncate shortens s to at most width display cells, appending an ellipsis
// when anything was cut. Width accounting is rune-width aware so CJK seller
// names do not overflow the row.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// padRight extends s with spaces to exactly width display cells,
// truncating first if necessary.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// scrollPercent reports how far through the scrollable range an offset is,
// in whole percent, clamped to [0, 100]. A list that fits its viewport is
// always 100%.
func scrollPercent(offset, totalExtent, viewport int) int {
	scrollable := totalExtent - viewport
	if scrollable <= 0 {
		return 100
	}
	if offset <= 0 {
		return 0
	}
	if offset >= scrollable {
		return 100
	}
	return offset * 100 / scrollable
}
