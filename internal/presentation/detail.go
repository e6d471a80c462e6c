package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/LandBooker/internal/command"
	"github.com/stpnv0/LandBooker/internal/domain"
)

func (r *Renderer) PlotDetailText(p domain.Plot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏞 <b>%s</b>\n\n", esc(p.Title))
	fmt.Fprintf(&sb, "💰 <b>Цена:</b> %s руб.\n", r.Price(p.Price))
	fmt.Fprintf(&sb, "📏 <b>Площадь:</b> %s\n", esc(p.Area))
	fmt.Fprintf(&sb, "📍 <b>Местоположение:</b> %s\n\n", esc(p.Location))
	fmt.Fprintf(&sb, "📝 <b>Описание:</b>\n%s", esc(p.Description))

	if len(p.Features) > 0 {
		sb.WriteString("\n\n⚡ <b>Особенности:</b>")
		for _, f := range p.Features {
			sb.WriteString("\n• " + esc(f))
		}
	}

	if len(p.Images) > 0 {
		sb.WriteString("\n\n🖼 <b>Фото:</b>")
		for i, img := range p.Images {
			fmt.Fprintf(&sb, "\n<a href=\"%s\">%d</a>", esc(img), i+1)
		}
	}

	fmt.Fprintf(&sb, "\n\n<b>Статус:</b> %s %s", PlotStatusEmoji(p.Status), title(string(p.Status)))

	return sb.String()
}

// RenderPlotDetail renders a plot card with the booking action.
func (r *Renderer) RenderPlotDetail(p domain.Plot) View {
	return View{
		Text: r.PlotDetailText(p),
		Controls: [][]Control{
			{{Label: "📅 Забронировать", Command: command.BookPlot(p.ID)}},
			{{Label: "↩️ Назад к каталогу", Command: command.BackToCatalog()}},
		},
	}
}

func (r *Renderer) BookingDetailText(b domain.Booking, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📋 <b>Бронь #%d</b>\n\n", b.ID)
	fmt.Fprintf(&sb, "🏞 <b>Участок:</b> %s\n", esc(b.PlotTitle))
	fmt.Fprintf(&sb, "💰 <b>Цена:</b> %s руб.\n", r.Price(b.PlotPrice))
	fmt.Fprintf(&sb, "📏 <b>Площадь:</b> %s\n", esc(b.PlotArea))
	fmt.Fprintf(&sb, "📍 <b>Местоположение:</b> %s\n\n", esc(b.PlotLocation))
	fmt.Fprintf(&sb, "🕐 <b>Создана:</b> %s", r.Date(b.CreatedAt))

	if b.ExpiresAt != nil {
		fmt.Fprintf(&sb, "\n⏰ <b>Истекает:</b> %s", r.Date(*b.ExpiresAt))
		if b.IsExpired(now) {
			sb.WriteString(" (срок истёк)")
		}
	}

	fmt.Fprintf(&sb, "\n\n<b>Статус:</b> %s %s", BookingStatusEmoji(b.Status), title(string(b.Status)))

	return sb.String()
}

// RenderBookingDetail renders a booking card. The cancel action is offered only
// for bookings the customer may cancel.
func (r *Renderer) RenderBookingDetail(b domain.Booking, now time.Time) View {
	var controls [][]Control
	if b.CancellableByCustomer() {
		controls = append(controls, []Control{{Label: "🚫 Отменить бронь", Command: command.CancelBooking(b.ID)}})
	}
	controls = append(controls, []Control{{Label: "↩️ Назад к списку", Command: command.BackToBookings()}})

	return View{
		Text:     r.BookingDetailText(b, now),
		Controls: controls,
	}
}
