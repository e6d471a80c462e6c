package bot

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/command"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/presentation"
	"github.com/stpnv0/LandBooker/internal/session"
	"github.com/wb-go/wbf/logger"
)

type CatalogSvc interface {
	Catalog(ctx context.Context, userID int64, refresh bool) []domain.Plot
	CatalogPage(ctx context.Context, userID int64, page int) []domain.Plot
	UserBookings(ctx context.Context, userID int64, refresh bool) []domain.Booking
	UserBookingsPage(ctx context.Context, userID int64, page int) []domain.Booking
	Plot(ctx context.Context, userID, plotID int64) (domain.Plot, error)
	Booking(ctx context.Context, userID, bookingID int64) (domain.Booking, error)
}

type BookingSvc interface {
	SelectPlot(ctx context.Context, userID, plotID int64) (domain.Plot, error)
	SubmitContact(ctx context.Context, customer domain.Customer, phone string) (*domain.Booking, error)
	AbortBooking(userID int64) bool
	RequestCancel(ctx context.Context, userID, bookingID int64) (domain.Booking, error)
	ConfirmCancel(ctx context.Context, userID int64) (int64, error)
	DeclineCancel(userID int64) bool
	Reset(userID int64) bool
}

type SessionReader interface {
	Get(userID int64) session.Session
}

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler routes events to the booking flow or to the stateless menu actions
// and renders the outcome.
type Handler struct {
	catalog  CatalogSvc
	booking  BookingSvc
	sessions SessionReader
	renderer *presentation.Renderer
	sender   Sender
	now      func() time.Time
	logger   logger.Logger
}

func NewHandler(
	catalog CatalogSvc,
	booking BookingSvc,
	sessions SessionReader,
	renderer *presentation.Renderer,
	sender Sender,
	logger logger.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		booking:  booking,
		sessions: sessions,
		renderer: renderer,
		sender:   sender,
		now:      time.Now,
		logger:   logger,
	}
}

func (h *Handler) Handle(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventCallback:
		return h.onCallback(ctx, ev)
	case EventCommand, EventMenu, EventContact, EventText:
		if h.sessions.Get(ev.Customer.ID).State == session.StateAwaitingContact {
			return h.inBookingFlow(ctx, ev)
		}
		return h.onMessage(ctx, ev)
	default:
		return nil
	}
}

// inBookingFlow handles a message while a phone number is expected. Only a
// contact continues the flow; any other message closes it.
func (h *Handler) inBookingFlow(ctx context.Context, ev Event) error {
	userID := ev.Customer.ID

	switch {
	case ev.Kind == EventContact:
		return h.submitContact(ctx, ev)
	case ev.Kind == EventText,
		ev.Kind == EventCommand && ev.Command == "cancel",
		ev.Kind == EventMenu && (ev.Menu == MenuAbort || ev.Menu == MenuBackToMenu):
		h.booking.AbortBooking(userID)
		return h.reply(ev, presentation.BookingAborted())
	default:
		h.booking.AbortBooking(userID)
		return h.onMessage(ctx, ev)
	}
}

func (h *Handler) submitContact(ctx context.Context, ev Event) error {
	if err := h.reply(ev, presentation.CreatingBooking()); err != nil {
		return err
	}

	booking, err := h.booking.SubmitContact(ctx, ev.Customer, ev.Phone)
	switch {
	case errors.Is(err, domain.ErrNoActiveSelection):
		return h.reply(ev, presentation.NoSelectedPlot())
	case err != nil:
		return h.reply(ev, presentation.BookingFailed())
	default:
		return h.reply(ev, h.renderer.BookingCreated(*booking))
	}
}

func (h *Handler) onMessage(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventCommand:
		return h.onCommand(ev)
	case EventMenu:
		return h.onMenu(ctx, ev)
	default:
		return h.reply(ev, presentation.UnknownInput())
	}
}

func (h *Handler) onCommand(ev Event) error {
	switch ev.Command {
	case "start":
		h.booking.Reset(ev.Customer.ID)
		return h.reply(ev, presentation.Welcome(ev.Customer))
	case "help":
		return h.reply(ev, presentation.Help())
	case "contacts":
		return h.reply(ev, presentation.Contacts())
	case "support":
		return h.reply(ev, presentation.Support())
	case "faq":
		return h.reply(ev, presentation.FAQ())
	case "feedback":
		return h.reply(ev, presentation.Feedback())
	case "cancel":
		if h.booking.Reset(ev.Customer.ID) {
			return h.reply(ev, presentation.ActionCancelled())
		}
		return h.reply(ev, presentation.MainMenu())
	default:
		return h.reply(ev, presentation.UnknownInput())
	}
}

func (h *Handler) onMenu(ctx context.Context, ev Event) error {
	switch ev.Menu {
	case MenuCatalog:
		return h.openCatalog(ctx, ev)
	case MenuBookings:
		return h.openBookings(ctx, ev)
	case MenuHelp:
		return h.reply(ev, presentation.Help())
	case MenuContacts:
		return h.reply(ev, presentation.Contacts())
	case MenuBackToMenu, MenuAbort:
		h.booking.Reset(ev.Customer.ID)
		return h.reply(ev, presentation.MainMenu())
	default:
		return h.reply(ev, presentation.UnknownInput())
	}
}

func (h *Handler) openCatalog(ctx context.Context, ev Event) error {
	if err := h.reply(ev, presentation.LoadingCatalog()); err != nil {
		return err
	}
	plots := h.catalog.Catalog(ctx, ev.Customer.ID, false)
	return h.reply(ev, h.plotList(plots, 0))
}

func (h *Handler) openBookings(ctx context.Context, ev Event) error {
	if err := h.reply(ev, presentation.LoadingBookings()); err != nil {
		return err
	}
	bookings := h.catalog.UserBookings(ctx, ev.Customer.ID, false)
	return h.reply(ev, h.bookingList(bookings, 0))
}

func (h *Handler) onCallback(ctx context.Context, ev Event) error {
	if _, err := h.sender.Request(tgbotapi.NewCallback(ev.CallbackID, "")); err != nil {
		h.logger.Warn("failed to answer callback",
			logger.String("callback_id", ev.CallbackID),
			logger.String("error", err.Error()),
		)
	}

	cmd, err := command.Decode(ev.Data)
	if err != nil {
		h.logger.Warn("unknown callback data",
			logger.Int64("user_id", ev.Customer.ID),
			logger.String("data", ev.Data),
		)
		return nil
	}

	return h.dispatch(ctx, ev, cmd)
}

func (h *Handler) dispatch(ctx context.Context, ev Event, cmd command.Command) error {
	userID := ev.Customer.ID

	switch cmd.Kind {
	case command.KindShowPlot:
		plot, err := h.catalog.Plot(ctx, userID, cmd.ID)
		if err != nil {
			return h.edit(ev, presentation.PlotNotFound())
		}
		return h.edit(ev, h.renderer.RenderPlotDetail(plot))

	case command.KindPlotsPage:
		return h.edit(ev, h.plotList(h.catalog.CatalogPage(ctx, userID, cmd.Page), cmd.Page))

	case command.KindRefreshPlots:
		return h.edit(ev, h.plotList(h.catalog.Catalog(ctx, userID, true), 0))

	case command.KindBackToCatalog:
		page := h.sessions.Get(userID).PlotsPage
		return h.edit(ev, h.plotList(h.catalog.CatalogPage(ctx, userID, page), page))

	case command.KindBookPlot:
		plot, err := h.booking.SelectPlot(ctx, userID, cmd.ID)
		switch {
		case errors.Is(err, domain.ErrPlotUnavailable):
			return h.edit(ev, presentation.PlotUnavailable())
		case err != nil:
			return h.edit(ev, presentation.PlotNotFound())
		}
		return h.reply(ev, h.renderer.BookingPrompt(plot))

	case command.KindShowBooking:
		booking, err := h.catalog.Booking(ctx, userID, cmd.ID)
		if err != nil {
			return h.edit(ev, presentation.BookingNotFound())
		}
		return h.edit(ev, h.renderer.RenderBookingDetail(booking, h.now()))

	case command.KindBookingsPage:
		return h.edit(ev, h.bookingList(h.catalog.UserBookingsPage(ctx, userID, cmd.Page), cmd.Page))

	case command.KindRefreshBookings:
		return h.edit(ev, h.bookingList(h.catalog.UserBookings(ctx, userID, true), 0))

	case command.KindBackToBookings:
		page := h.sessions.Get(userID).BookingsPage
		return h.edit(ev, h.bookingList(h.catalog.UserBookingsPage(ctx, userID, page), page))

	case command.KindCancelBooking:
		_, err := h.booking.RequestCancel(ctx, userID, cmd.ID)
		switch {
		case errors.Is(err, domain.ErrBookingNotCancelable):
			return h.edit(ev, presentation.BookingNotCancelable())
		case err != nil:
			return h.edit(ev, presentation.BookingNotFound())
		}
		return h.edit(ev, presentation.CancelPrompt())

	case command.KindConfirmYes:
		bookingID, err := h.booking.ConfirmCancel(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrNoPendingCancel):
			return h.edit(ev, presentation.NoPendingCancel())
		case err != nil:
			return h.edit(ev, presentation.CancelFailed())
		}
		if err := h.edit(ev, presentation.CancelSucceeded(bookingID)); err != nil {
			return err
		}
		return h.reply(ev, h.bookingList(h.catalog.UserBookings(ctx, userID, false), 0))

	case command.KindConfirmNo:
		h.booking.DeclineCancel(userID)
		page := h.sessions.Get(userID).BookingsPage
		return h.edit(ev, h.bookingList(h.catalog.UserBookingsPage(ctx, userID, page), page))

	default:
		h.logger.Warn("unhandled command", logger.String("command", cmd.String()))
		return nil
	}
}

func (h *Handler) plotList(plots []domain.Plot, page int) presentation.View {
	if len(plots) == 0 {
		return presentation.NoPlots()
	}
	return h.renderer.RenderPlotList(plots, page)
}

func (h *Handler) bookingList(bookings []domain.Booking, page int) presentation.View {
	if len(bookings) == 0 {
		return presentation.NoBookings()
	}
	return h.renderer.RenderBookingList(bookings, page)
}

func (h *Handler) reply(ev Event, v presentation.View) error {
	_, err := h.sender.Send(newMessage(ev.ChatID, v))
	return err
}

// edit updates the message the callback came from. Unchanged content is not
// an error.
func (h *Handler) edit(ev Event, v presentation.View) error {
	_, err := h.sender.Send(editMessage(ev.ChatID, ev.MessageID, v))
	if isNotModified(err) {
		return nil
	}
	return err
}

func isNotModified(err error) bool {
	var tgErr *tgbotapi.Error
	return errors.As(err, &tgErr) &&
		tgErr.Code == http.StatusBadRequest &&
		strings.Contains(tgErr.Message, "message is not modified")
}
