package notification

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            5,
		UserID:        42,
		PlotID:        1,
		PlotPrice:     250000,
		PlotTitle:     "Lakeside <1>",
		Status:        domain.BookingStatusPending,
		CustomerName:  "Alice",
		CustomerPhone: "+79991234567",
		CustomerEmail: "alice@telegram",
	}
}

func TestDispatcher_Notify_AllSinks(t *testing.T) {
	a := mocks.NewMockSink(t)
	b := mocks.NewMockSink(t)
	booking := testBooking()

	a.EXPECT().Name().Return("a").Maybe()
	b.EXPECT().Name().Return("b").Maybe()
	a.EXPECT().Send(mock.Anything, domain.BookingEventCreated, booking).Return(nil)
	b.EXPECT().Send(mock.Anything, domain.BookingEventCreated, booking).Return(nil)

	d := NewDispatcher(newTestLogger(t), a, b)

	assert.True(t, d.Notify(context.Background(), domain.BookingEventCreated, booking))
}

func TestDispatcher_Notify_FailingSinkDoesNotStopOthers(t *testing.T) {
	failing := mocks.NewMockSink(t)
	next := mocks.NewMockSink(t)
	booking := testBooking()

	failing.EXPECT().Name().Return("failing").Maybe()
	next.EXPECT().Name().Return("next").Maybe()
	failing.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("down"))
	next.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	d := NewDispatcher(newTestLogger(t), failing, next)

	assert.False(t, d.Notify(context.Background(), domain.BookingEventCancelled, booking))
}

func TestDispatcher_Notify_RecoversPanic(t *testing.T) {
	panicking := mocks.NewMockSink(t)
	booking := testBooking()

	panicking.EXPECT().Name().Return("panicking").Maybe()
	panicking.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.BookingEvent, *domain.Booking) error {
			panic("boom")
		})

	d := NewDispatcher(newTestLogger(t), panicking)

	assert.NotPanics(t, func() {
		assert.False(t, d.Notify(context.Background(), domain.BookingEventRejected, booking))
	})
}

func TestDispatcher_Notify_NilBooking(t *testing.T) {
	d := NewDispatcher(newTestLogger(t), NewLogSink(newTestLogger(t)))

	assert.False(t, d.Notify(context.Background(), domain.BookingEventCreated, nil))
}

func TestLogSink(t *testing.T) {
	s := NewLogSink(newTestLogger(t))

	assert.Equal(t, "log", s.Name())
	assert.NoError(t, s.Send(context.Background(), domain.BookingEventConfirmed, testBooking()))
}

func TestTelegramSink_Send(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewTelegramSink(bot, 100, rate.NewLimiter(rate.Inf, 1), newTestLogger(t))

	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok &&
			msg.ChatID == 100 &&
			msg.ParseMode == tgbotapi.ModeHTML &&
			strings.Contains(msg.Text, "Новая бронь #5") &&
			strings.Contains(msg.Text, "Lakeside &lt;1&gt;")
	})).Return(tgbotapi.Message{}, nil)

	require.NoError(t, s.Send(context.Background(), domain.BookingEventCreated, testBooking()))
}

func TestTelegramSink_SendError(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewTelegramSink(bot, 100, nil, newTestLogger(t))

	bot.EXPECT().Send(mock.Anything).Return(tgbotapi.Message{}, errors.New("forbidden"))

	assert.Error(t, s.Send(context.Background(), domain.BookingEventCancelled, testBooking()))
}

func TestTelegramSink_DisabledWithoutChat(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewTelegramSink(bot, 0, nil, newTestLogger(t))

	assert.NoError(t, s.Send(context.Background(), domain.BookingEventCreated, testBooking()))
}

func TestTelegramSink_CancelledContext(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewTelegramSink(bot, 100, rate.NewLimiter(rate.Inf, 1), newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, domain.BookingEventCreated, testBooking()), context.Canceled)
}

func TestManagerText_UnknownEvent(t *testing.T) {
	text := managerText("archived", testBooking())

	assert.Contains(t, text, "📝 archived #5")
}

func TestCustomerSink_Send(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewCustomerSink(bot, rate.NewLimiter(rate.Inf, 1), newTestLogger(t))

	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok &&
			msg.ChatID == 42 &&
			msg.ParseMode == tgbotapi.ModeHTML &&
			strings.Contains(msg.Text, "Бронь #5 создана успешно") &&
			strings.Contains(msg.Text, "250,000 руб.") &&
			strings.Contains(msg.Text, "Lakeside &lt;1&gt;")
	})).Return(tgbotapi.Message{}, nil)

	assert.Equal(t, "customer", s.Name())
	require.NoError(t, s.Send(context.Background(), domain.BookingEventCreated, testBooking()))
}

func TestCustomerSink_SkipsUnknownUser(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewCustomerSink(bot, nil, newTestLogger(t))

	booking := testBooking()
	booking.UserID = 0

	assert.NoError(t, s.Send(context.Background(), domain.BookingEventCancelled, booking))
}

func TestCustomerSink_SendError(t *testing.T) {
	bot := mocks.NewMockTelegramSender(t)
	s := NewCustomerSink(bot, nil, newTestLogger(t))

	bot.EXPECT().Send(mock.Anything).Return(tgbotapi.Message{}, errors.New("blocked"))

	assert.Error(t, s.Send(context.Background(), domain.BookingEventConfirmed, testBooking()))
}

func TestCustomerText(t *testing.T) {
	b := testBooking()

	tests := map[domain.BookingEvent]string{
		domain.BookingEventCreated:   "Ожидайте подтверждения от менеджера",
		domain.BookingEventConfirmed: "Бронь #5 подтверждена",
		domain.BookingEventRejected:  "Бронь #5 отклонена",
		domain.BookingEventCancelled: "Бронь #5 отменена",
		"archived":                   "Бронь #5: archived",
	}

	for event, want := range tests {
		t.Run(string(event), func(t *testing.T) {
			assert.Contains(t, customerText(event, b), want)
		})
	}
}

func TestNATSSink_Send(t *testing.T) {
	pub := mocks.NewMockPublisher(t)
	s := NewNATSSink(pub, "land_booker.bookings")

	pub.EXPECT().Publish("land_booker.bookings.created", mock.Anything).
		Run(func(_ string, data []byte) {
			var msg map[string]any
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, "created", msg["event"])
			assert.EqualValues(t, 5, msg["booking_id"])
			assert.EqualValues(t, 1, msg["plot_id"])
			assert.EqualValues(t, 42, msg["user_id"])
			assert.Equal(t, "pending", msg["status"])
		}).
		Return(nil)

	require.NoError(t, s.Send(context.Background(), domain.BookingEventCreated, testBooking()))
}

func TestNATSSink_PublishError(t *testing.T) {
	pub := mocks.NewMockPublisher(t)
	s := NewNATSSink(pub, "p")

	pub.EXPECT().Publish("p.cancelled", mock.Anything).Return(errors.New("closed"))

	assert.Error(t, s.Send(context.Background(), domain.BookingEventCancelled, testBooking()))
}

func TestNATSSink_NoConnection(t *testing.T) {
	s := NewNATSSink(nil, "p")

	assert.ErrorIs(t, s.Send(context.Background(), domain.BookingEventCreated, testBooking()), errNoConnection)
}
