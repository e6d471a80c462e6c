package notification

import (
	"context"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var eventTitles = map[domain.BookingEvent]string{
	domain.BookingEventCreated:   "🆕 Новая бронь",
	domain.BookingEventConfirmed: "✅ Бронь подтверждена",
	domain.BookingEventRejected:  "❌ Бронь отклонена",
	domain.BookingEventCancelled: "🚫 Бронь отменена",
}

// TelegramSink posts notifications to the managers' chat.
type TelegramSink struct {
	bot     TelegramSender
	chatID  int64
	limiter *rate.Limiter
	logger  logger.Logger
}

func NewTelegramSink(bot TelegramSender, chatID int64, limiter *rate.Limiter, logger logger.Logger) *TelegramSink {
	return &TelegramSink{
		bot:     bot,
		chatID:  chatID,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *TelegramSink) Name() string { return "telegram" }

func (s *TelegramSink) Send(ctx context.Context, event domain.BookingEvent, b *domain.Booking) error {
	if s.bot == nil || s.chatID == 0 {
		s.logger.Debug("notification skipped (telegram disabled)", logger.String("event", string(event)))
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

	msg := tgbotapi.NewMessage(s.chatID, managerText(event, b))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", s.chatID, err)
	}

	return nil
}

func managerText(event domain.BookingEvent, b *domain.Booking) string {
	title, ok := eventTitles[event]
	if !ok {
		title = "📝 " + string(event)
	}

	return fmt.Sprintf(
		"<b>%s #%d</b>\n\nУчасток: %s (#%d)\nКлиент: %s\nТелефон: %s\nEmail: %s\nСтатус: %s",
		title, b.ID,
		html.EscapeString(b.PlotTitle), b.PlotID,
		html.EscapeString(b.CustomerName),
		html.EscapeString(b.CustomerPhone),
		html.EscapeString(b.CustomerEmail),
		b.Status,
	)
}
