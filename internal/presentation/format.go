package presentation

import (
	"html"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stpnv0/LandBooker/internal/domain"
)

const (
	maxLabelLen   = 50
	ellipsis      = "..."
	dateLayout    = "02.01.2006 15:04"
	unknownStatus = "📝"
)

var plotStatusEmoji = map[domain.PlotStatus]string{
	domain.PlotStatusAvailable: "✅",
	domain.PlotStatusBooked:    "⏳",
	domain.PlotStatusSold:      "🏁",
}

var bookingStatusEmoji = map[domain.BookingStatus]string{
	domain.BookingStatusPending:   "⏳",
	domain.BookingStatusConfirmed: "✅",
	domain.BookingStatusRejected:  "❌",
	domain.BookingStatusCompleted: "🏁",
	domain.BookingStatusCancelled: "🚫",
}

func PlotStatusEmoji(s domain.PlotStatus) string {
	if e, ok := plotStatusEmoji[s]; ok {
		return e
	}
	return unknownStatus
}

func BookingStatusEmoji(s domain.BookingStatus) string {
	if e, ok := bookingStatusEmoji[s]; ok {
		return e
	}
	return unknownStatus
}

// Price formats an amount with a thousands separator and no decimals.
func (r *Renderer) Price(v float64) string {
	return r.printer.Sprintf("%.0f", v)
}

func (r *Renderer) Date(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.In(r.location).Format(dateLayout)
}

// Truncate caps s at 50 characters, replacing the tail with "...".
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxLabelLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLabelLen-utf8.RuneCountInString(ellipsis)]) + ellipsis
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func esc(s string) string {
	return html.EscapeString(s)
}
