package report

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the day-month-year layout printed in reports.
const DateLayout = "02-01-2006"

// MoneyFormatter prints whole-unit amounts with locale thousands grouping
// and a currency prefix, e.g. "Rp 5.000.000".
type MoneyFormatter struct {
	prefix string
	tag    language.Tag
}

// NewMoneyFormatter creates a MoneyFormatter. An unparsable locale falls
// back to Indonesian.
func NewMoneyFormatter(prefix, locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}
	return &MoneyFormatter{prefix: strings.TrimSpace(prefix), tag: tag}
}

// Format renders amount. Negative amounts get a leading minus before the
// prefix: -Rp 3.800.000.
func (f *MoneyFormatter) Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	grouped := message.NewPrinter(f.tag).Sprintf("%d", amount)
	if f.prefix == "" {
		return sign + grouped
	}
	return sign + f.prefix + " " + grouped
}

// FormatDate renders a date as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
