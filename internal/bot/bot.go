// Package bot is the Telegram transport: long polling, per-chat ordering and
// the error boundary around every update.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/presentation"
	"github.com/stpnv0/LandBooker/pkg/metrics"
	"github.com/wb-go/wbf/logger"
)

// API is the part of *tgbotapi.BotAPI the bot needs.
type API interface {
	Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type FlowCounter interface {
	ActiveFlows() int
}

const queueBuffer = 64

type Bot struct {
	api         API
	handler     *Handler
	flows       FlowCounter
	pool        *Pool
	pollTimeout int
	logger      logger.Logger
}

func New(api API, handler *Handler, flows FlowCounter, workers, pollTimeout int, logger logger.Logger) *Bot {
	b := &Bot{
		api:         api,
		handler:     handler,
		flows:       flows,
		pollTimeout: pollTimeout,
		logger:      logger,
	}
	b.pool = NewPool(workers, queueBuffer, b.process)
	return b
}

// Run polls for updates until ctx is done, then waits for queued updates.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(cfg)

	b.pool.Start(ctx)
	defer b.pool.Stop()

	b.logger.Info("bot started",
		logger.Int("workers", len(b.pool.queues)),
		logger.Int("poll_timeout", b.pollTimeout),
	)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				b.logger.Warn("updates channel closed")
				return nil
			}
			ev := Classify(upd)
			if ev.Kind == EventUnsupported {
				metrics.BotUpdatesTotal.WithLabelValues(ev.Kind.String(), "skipped").Inc()
				continue
			}
			b.pool.Submit(ctx, ev)
		}
	}
}

// process is the error boundary of one update: panics and errors are logged
// and the user gets a templated message.
func (b *Bot) process(ctx context.Context, ev Event) {
	err := b.handle(ctx, ev)

	result := "ok"
	if err != nil {
		result = "error"
		b.fail(ev, err)
	}
	metrics.BotUpdatesTotal.WithLabelValues(ev.Kind.String(), result).Inc()

	if b.flows != nil {
		metrics.ActiveSessions.Set(float64(b.flows.ActiveFlows()))
	}
}

func (b *Bot) handle(ctx context.Context, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()

	return b.handler.Handle(ctx, ev)
}

func (b *Bot) fail(ev Event, err error) {
	category := Categorize(err)

	b.logger.Error("update handling failed",
		logger.Int("update_id", ev.UpdateID),
		logger.Int64("user_id", ev.Customer.ID),
		logger.String("username", ev.Customer.Username),
		logger.String("kind", ev.Kind.String()),
		logger.String("text", ev.Text),
		logger.String("data", ev.Data),
		logger.String("category", category.String()),
		logger.String("error", err.Error()),
	)

	if category == CategoryForbidden {
		return
	}

	msg := newMessage(ev.ChatID, presentation.View{Text: ErrorText(category)})
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		b.logger.Error("failed to send error message",
			logger.Int64("chat_id", ev.ChatID),
			logger.String("error", sendErr.Error()),
		)
	}
}
