package presentation

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stpnv0/LandBooker/internal/command"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlots(n int) []domain.Plot {
	plots := make([]domain.Plot, n)
	for i := range plots {
		plots[i] = domain.Plot{
			ID:     int64(i + 1),
			Title:  fmt.Sprintf("Plot %d", i+1),
			Price:  100000,
			Status: domain.PlotStatusAvailable,
		}
	}
	return plots
}

func entryCount(v View, kind command.Kind) int {
	n := 0
	for _, c := range v.Commands() {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func TestPaginate_Properties(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for _, size := range []int{1, 3, 5, 7} {
			pages := (n + size - 1) / size
			for i := 0; i < pages; i++ {
				p := Paginate(n, i, size)
				assert.Equal(t, min(size, n-i*size), p.End-p.Start, "n=%d size=%d page=%d", n, size, i)
				assert.Equal(t, i > 0, p.HasPrev)
				assert.Equal(t, (i+1)*size < n, p.HasNext)
			}
		}
	}
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	p := Paginate(12, 9, 5)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Start)
	assert.Equal(t, 12, p.End)

	p = Paginate(12, -3, 5)
	assert.Equal(t, 0, p.Number)

	p = Paginate(0, 0, 5)
	assert.Equal(t, 0, p.End-p.Start)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestRenderPlotList_LastPage(t *testing.T) {
	r := NewRenderer(5, time.UTC)

	v := r.RenderPlotList(makePlots(12), 2)

	assert.Equal(t, 2, entryCount(v, command.KindShowPlot))
	assert.Equal(t, 1, entryCount(v, command.KindPlotsPage), "only prev")
	assert.Contains(t, v.Commands(), command.PlotsPage(1))
	assert.NotContains(t, v.Commands(), command.PlotsPage(3))
	assert.True(t, v.Has(command.KindRefreshPlots))
	assert.Contains(t, v.Text, "Найдено участков: 12")
}

func TestRenderPlotList_FirstPage(t *testing.T) {
	r := NewRenderer(5, time.UTC)

	v := r.RenderPlotList(makePlots(12), 0)

	assert.Equal(t, 5, entryCount(v, command.KindShowPlot))
	assert.Equal(t, []command.Command{command.PlotsPage(1)}, commandsOfKind(v, command.KindPlotsPage))

	last := v.Controls[len(v.Controls)-1]
	require.Len(t, last, 1)
	assert.Equal(t, command.RefreshPlots(), last[0].Command)
}

func TestRenderPlotList_SinglePageHasNoNavigation(t *testing.T) {
	r := NewRenderer(5, time.UTC)

	v := r.RenderPlotList(makePlots(5), 0)

	assert.Equal(t, 5, entryCount(v, command.KindShowPlot))
	assert.False(t, v.Has(command.KindPlotsPage))
	assert.Len(t, v.Controls, 6)
}

func TestRenderPlotList_LabelTruncated(t *testing.T) {
	r := NewRenderer(5, time.UTC)
	plots := []domain.Plot{{ID: 1, Title: strings.Repeat("Очень длинное название ", 5), Price: 250000}}

	v := r.RenderPlotList(plots, 0)

	label := v.Controls[0][0].Label
	assert.Equal(t, 50, utf8.RuneCountInString(label))
	assert.True(t, strings.HasSuffix(label, "..."))
}

func TestRenderBookingList(t *testing.T) {
	r := NewRenderer(5, time.UTC)
	bookings := make([]domain.Booking, 7)
	for i := range bookings {
		bookings[i] = domain.Booking{ID: int64(i + 1), PlotTitle: "Lakeside", Status: domain.BookingStatusPending}
	}

	v := r.RenderBookingList(bookings, 1)

	assert.Equal(t, 2, entryCount(v, command.KindShowBooking))
	assert.Equal(t, []command.Command{command.BookingsPage(0)}, commandsOfKind(v, command.KindBookingsPage))
	assert.True(t, v.Has(command.KindRefreshBookings))
	assert.Equal(t, "⏳ Бронь #6 - Lakeside", v.Controls[0][0].Label)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short"))

	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, Truncate(exact))

	long := strings.Repeat("б", 51)
	got := Truncate(long)
	assert.Equal(t, strings.Repeat("б", 47)+"...", got)
}

func TestPrice(t *testing.T) {
	r := NewRenderer(5, time.UTC)

	assert.Equal(t, "250,000", r.Price(250000))
	assert.Equal(t, "1,234,568", r.Price(1234567.6))
	assert.Equal(t, "0", r.Price(0))
}

func TestStatusEmoji(t *testing.T) {
	assert.Equal(t, "✅", PlotStatusEmoji(domain.PlotStatusAvailable))
	assert.Equal(t, "📝", PlotStatusEmoji("reserved"))
	assert.Equal(t, "🚫", BookingStatusEmoji(domain.BookingStatusCancelled))
	assert.Equal(t, "📝", BookingStatusEmoji("archived"))
}

func TestRenderPlotDetail(t *testing.T) {
	r := NewRenderer(5, time.UTC)
	p := domain.Plot{
		ID:          1,
		Title:       "Lake <view>",
		Price:       250000,
		Area:        "10 соток",
		Location:    "Московская область",
		Description: "Участок с коммуникациями",
		Status:      domain.PlotStatusAvailable,
		Features:    []string{"Газ", "Вода"},
	}

	v := r.RenderPlotDetail(p)

	assert.Contains(t, v.Text, "Lake &lt;view&gt;")
	assert.Contains(t, v.Text, "250,000 руб.")
	assert.Contains(t, v.Text, "• Газ\n• Вода")
	assert.Contains(t, v.Text, "✅ Available")
	assert.Equal(t, []command.Command{command.BookPlot(1), command.BackToCatalog()}, v.Commands())
}

func TestRenderBookingDetail_CancelOnlyWhenPending(t *testing.T) {
	msk, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	r := NewRenderer(5, msk)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	expires := created.Add(24 * time.Hour)
	b := domain.Booking{
		ID:        5,
		PlotTitle: "Lakeside",
		PlotPrice: 250000,
		Status:    domain.BookingStatusPending,
		CreatedAt: created,
		ExpiresAt: &expires,
	}

	v := r.RenderBookingDetail(b, created)
	assert.True(t, v.Has(command.KindCancelBooking))
	assert.Contains(t, v.Text, "01.05.2024 13:00")
	assert.Contains(t, v.Text, "02.05.2024 13:00")
	assert.NotContains(t, v.Text, "срок истёк")
	assert.Contains(t, v.Text, "⏳ Pending")

	b.Status = domain.BookingStatusConfirmed
	v = r.RenderBookingDetail(b, expires.Add(time.Minute))
	assert.False(t, v.Has(command.KindCancelBooking))
	assert.True(t, v.Has(command.KindBackToBookings))
	assert.Contains(t, v.Text, "срок истёк")
}

func TestCancelPrompt(t *testing.T) {
	v := CancelPrompt()
	assert.Equal(t, []command.Command{command.ConfirmYes(), command.ConfirmNo()}, v.Commands())
}

func commandsOfKind(v View, kind command.Kind) []command.Command {
	var out []command.Command
	for _, c := range v.Commands() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
