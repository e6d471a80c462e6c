package presentation

import (
	"fmt"

	"github.com/stpnv0/LandBooker/internal/command"
	"github.com/stpnv0/LandBooker/internal/domain"
)

// Page is the slice window [Start, End) of a paginated list.
type Page struct {
	Number  int
	Start   int
	End     int
	HasPrev bool
	HasNext bool
}

// Paginate computes page number of a list of n items. Out-of-range pages are
// clamped to the nearest existing page.
func Paginate(n, number, size int) Page {
	if size <= 0 {
		size = 1
	}
	last := 0
	if n > 0 {
		last = (n - 1) / size
	}
	if number < 0 {
		number = 0
	}
	if number > last {
		number = last
	}

	start := number * size
	end := min(start+size, n)
	if start > n {
		start = n
	}

	return Page{
		Number:  number,
		Start:   start,
		End:     end,
		HasPrev: number > 0,
		HasNext: (number+1)*size < n,
	}
}

func navRow(p Page, prev, next command.Command) []Control {
	var row []Control
	if p.HasPrev {
		row = append(row, Control{Label: "⬅️ Назад", Command: prev})
	}
	if p.HasNext {
		row = append(row, Control{Label: "Вперед ➡️", Command: next})
	}
	return row
}

// RenderPlotList renders one page of the catalog.
func (r *Renderer) RenderPlotList(plots []domain.Plot, page int) View {
	p := Paginate(len(plots), page, r.pageSize)

	controls := make([][]Control, 0, p.End-p.Start+2)
	for _, plot := range plots[p.Start:p.End] {
		label := Truncate(fmt.Sprintf("🏞 %s - %s руб.", plot.Title, r.Price(plot.Price)))
		controls = append(controls, []Control{{Label: label, Command: command.ShowPlot(plot.ID)}})
	}

	if nav := navRow(p, command.PlotsPage(p.Number-1), command.PlotsPage(p.Number+1)); len(nav) > 0 {
		controls = append(controls, nav)
	}
	controls = append(controls, []Control{{Label: "🔄 Обновить", Command: command.RefreshPlots()}})

	return View{
		Text:     fmt.Sprintf("🏞 <b>Каталог участков</b>\n\nНайдено участков: %d", len(plots)),
		Controls: controls,
	}
}

// RenderBookingList renders one page of the user's bookings.
func (r *Renderer) RenderBookingList(bookings []domain.Booking, page int) View {
	p := Paginate(len(bookings), page, r.pageSize)

	controls := make([][]Control, 0, p.End-p.Start+2)
	for _, b := range bookings[p.Start:p.End] {
		label := Truncate(fmt.Sprintf("%s Бронь #%d - %s", BookingStatusEmoji(b.Status), b.ID, b.PlotTitle))
		controls = append(controls, []Control{{Label: label, Command: command.ShowBooking(b.ID)}})
	}

	if nav := navRow(p, command.BookingsPage(p.Number-1), command.BookingsPage(p.Number+1)); len(nav) > 0 {
		controls = append(controls, nav)
	}
	controls = append(controls, []Control{{Label: "🔄 Обновить", Command: command.RefreshBookings()}})

	return View{
		Text:     fmt.Sprintf("📋 <b>Ваши бронирования</b>\n\nНайдено броней: %d", len(bookings)),
		Controls: controls,
	}
}
