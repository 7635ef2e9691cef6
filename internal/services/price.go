package services

import (
	"regexp"
	"strconv"
	"strings"
)

var priceLabelPattern = regexp.MustCompile(`^(\D*?)(\d[\d,]*(?:\.\d+)?)(.*)$`)

// priceLabel splits a display price such as "From $1,500 pp" into its
// prefix, amount and suffix.
type priceLabel struct {
	prefix   string
	amount   float64
	decimals bool
	suffix   string
}

func parsePriceLabel(label string) (priceLabel, bool) {
	m := priceLabelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return priceLabel{}, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return priceLabel{}, false
	}
	return priceLabel{prefix: m[1], amount: amount, decimals: strings.Contains(m[2], "."), suffix: m[3]}, true
}

func (p priceLabel) String() string {
	return p.prefix + formatAmount(p.amount, p.decimals) + p.suffix
}

// TotalPrice multiplies a per-person price label by the number of travelers,
// keeping the label's currency marker. Labels without a number yield "".
func TotalPrice(label string, travelers int) string {
	p, ok := parsePriceLabel(label)
	if !ok || travelers < 1 {
		return ""
	}
	p.amount *= float64(travelers)
	return p.String()
}

func formatAmount(v float64, decimals bool) string {
	prec := 0
	if decimals {
		prec = 2
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// priceAmount is used for sorting by price; unparsable labels sort first.
func priceAmount(label string) float64 {
	p, _ := parsePriceLabel(label)
	return p.amount
}

// durationDays reads the leading number of a label like "3 Days".
func durationDays(label string) int {
	p, ok := parsePriceLabel(label)
	if !ok {
		return 0
	}
	return int(p.amount)
}
