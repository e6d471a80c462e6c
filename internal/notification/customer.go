package notification

import (
	"context"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/time/rate"
)

var pricePrinter = message.NewPrinter(language.English)

// CustomerSink messages the buyer who owns the booking. Bookings without a
// known user are skipped.
type CustomerSink struct {
	bot     TelegramSender
	limiter *rate.Limiter
	logger  logger.Logger
}

func NewCustomerSink(bot TelegramSender, limiter *rate.Limiter, logger logger.Logger) *CustomerSink {
	return &CustomerSink{
		bot:     bot,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *CustomerSink) Name() string { return "customer" }

func (s *CustomerSink) Send(ctx context.Context, event domain.BookingEvent, b *domain.Booking) error {
	if s.bot == nil || b.UserID == 0 {
		s.logger.Debug("notification skipped (no customer)",
			logger.String("event", string(event)),
			logger.Int64("booking_id", b.ID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	msg := tgbotapi.NewMessage(b.UserID, customerText(event, b))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send to user %d: %w", b.UserID, err)
	}

	return nil
}

func customerText(event domain.BookingEvent, b *domain.Booking) string {
	plot := html.EscapeString(b.PlotTitle)

	switch event {
	case domain.BookingEventCreated:
		return fmt.Sprintf(
			"📧 <b>Бронь #%d создана успешно!</b>\n\nУчасток: %s\nЦена: %s руб.\nСтатус: %s\n\nОжидайте подтверждения от менеджера.",
			b.ID, plot, formatPrice(b.PlotPrice), b.Status,
		)
	case domain.BookingEventConfirmed:
		return fmt.Sprintf(
			"🎉 <b>Бронь #%d подтверждена!</b>\n\nУчасток: %s\nЦена: %s руб.\n\nСвяжитесь с менеджером для оформления документов.",
			b.ID, plot, formatPrice(b.PlotPrice),
		)
	case domain.BookingEventRejected:
		return fmt.Sprintf("❌ <b>Бронь #%d отклонена.</b>\n\nУчасток: %s", b.ID, plot)
	case domain.BookingEventCancelled:
		return fmt.Sprintf("📝 <b>Бронь #%d отменена.</b>\n\nУчасток: %s", b.ID, plot)
	default:
		return fmt.Sprintf("📝 Бронь #%d: %s\n\nУчасток: %s", b.ID, html.EscapeString(string(event)), plot)
	}
}

func formatPrice(v float64) string {
	return pricePrinter.Sprintf("%.0f", v)
}
