package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/bot/mocks"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/presentation"
	"github.com/stpnv0/LandBooker/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// recorder captures everything the handler sends.
type recorder struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
}

func (r *recorder) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, c)
	return tgbotapi.Message{}, r.sendErr
}

func (r *recorder) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (r *recorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.sent {
		switch m := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, m.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, m.Text)
		}
	}
	return out
}

func (r *recorder) last() tgbotapi.Chattable {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return nil
	}
	return r.sent[len(r.sent)-1]
}

type handlerFixture struct {
	catalog  *mocks.MockCatalogSvc
	booking  *mocks.MockBookingSvc
	sessions *session.Store
	sender   *recorder
	handler  *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		catalog:  mocks.NewMockCatalogSvc(t),
		booking:  mocks.NewMockBookingSvc(t),
		sessions: session.NewStore(0),
		sender:   &recorder{},
	}
	f.handler = NewHandler(
		f.catalog,
		f.booking,
		f.sessions,
		presentation.NewRenderer(5, time.UTC),
		f.sender,
		newTestLogger(t),
	)
	return f
}

var alice = domain.Customer{ID: 42, Username: "alice", FirstName: "Alice"}

func callback(data string) Event {
	return Event{Kind: EventCallback, ChatID: 42, MessageID: 10, CallbackID: "cb", Data: data, Customer: alice}
}

func textEvent(kind EventKind, text string) Event {
	return Event{Kind: kind, ChatID: 42, Customer: alice, Text: text}
}

func TestHandler_Start(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().Reset(alice.ID).Return(false)

	ev := textEvent(EventCommand, "/start")
	ev.Command = "start"
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	msg, ok := f.sender.last().(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "Привет, Alice")
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, msg.ReplyMarkup)
}

func TestHandler_StaticCommands(t *testing.T) {
	tests := map[string]string{
		"help":     "Как пользоваться ботом",
		"contacts": "Наши контакты",
		"support":  "Техническая поддержка",
		"faq":      "Часто задаваемые вопросы",
		"feedback": "Обратная связь",
		"unknown":  "Я понимаю только команды из меню",
	}

	for cmd, want := range tests {
		t.Run(cmd, func(t *testing.T) {
			f := newHandlerFixture(t)

			ev := textEvent(EventCommand, "/"+cmd)
			ev.Command = cmd
			require.NoError(t, f.handler.Handle(context.Background(), ev))

			assert.Contains(t, f.sender.texts()[0], want)
		})
	}
}

func TestHandler_MenuCatalog(t *testing.T) {
	f := newHandlerFixture(t)

	plots := []domain.Plot{{ID: 1, Title: "Lakeside", Price: 250000}}
	f.catalog.EXPECT().Catalog(mock.Anything, alice.ID, false).Return(plots)

	ev := textEvent(EventMenu, labelCatalog)
	ev.Menu = MenuCatalog
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	texts := f.sender.texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "Загружаю каталог")
	assert.Contains(t, texts[1], "Найдено участков: 1")

	msg := f.sender.last().(tgbotapi.MessageConfig)
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.NotNil(t, markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "plot_1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "🏞 Lakeside - 250,000 руб.", markup.InlineKeyboard[0][0].Text)
}

func TestHandler_MenuCatalog_Empty(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().Catalog(mock.Anything, alice.ID, false).Return([]domain.Plot{})

	ev := textEvent(EventMenu, labelCatalog)
	ev.Menu = MenuCatalog
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	assert.Contains(t, f.sender.texts()[1], "нет доступных участков")
}

func TestHandler_MenuBookings(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().UserBookings(mock.Anything, alice.ID, false).Return(nil)

	ev := textEvent(EventMenu, labelBookings)
	ev.Menu = MenuBookings
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	assert.Contains(t, f.sender.texts()[1], "У вас пока нет бронирований")
}

func TestHandler_Callback_AnswersAndShowsPlot(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().Plot(mock.Anything, alice.ID, int64(1)).
		Return(domain.Plot{ID: 1, Title: "Lakeside", Status: domain.PlotStatusAvailable}, nil)

	require.NoError(t, f.handler.Handle(context.Background(), callback("plot_1")))

	require.Len(t, f.sender.requests, 1)
	edit, ok := f.sender.last().(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 10, edit.MessageID)
	assert.Contains(t, edit.Text, "Lakeside")
	require.NotNil(t, edit.ReplyMarkup)
	assert.Equal(t, "book_1", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
}

func TestHandler_Callback_PlotNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().Plot(mock.Anything, alice.ID, int64(9)).Return(domain.Plot{}, domain.ErrPlotNotFound)

	require.NoError(t, f.handler.Handle(context.Background(), callback("plot_9")))

	assert.Equal(t, []string{"❌ Участок не найден"}, f.sender.texts())
}

func TestHandler_Callback_UnknownData(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.handler.Handle(context.Background(), callback("fav_1")))

	assert.Len(t, f.sender.requests, 1)
	assert.Empty(t, f.sender.sent)
}

func TestHandler_Callback_PlotsPage(t *testing.T) {
	f := newHandlerFixture(t)

	plots := make([]domain.Plot, 12)
	for i := range plots {
		plots[i] = domain.Plot{ID: int64(i + 1), Title: "P"}
	}
	f.catalog.EXPECT().CatalogPage(mock.Anything, alice.ID, 2).Return(plots)

	require.NoError(t, f.handler.Handle(context.Background(), callback("plots_page_2")))

	edit := f.sender.last().(tgbotapi.EditMessageTextConfig)
	rows := edit.ReplyMarkup.InlineKeyboard
	require.Len(t, rows, 4)
	assert.Equal(t, "plot_11", *rows[0][0].CallbackData)
	assert.Equal(t, "plot_12", *rows[1][0].CallbackData)
	require.Len(t, rows[2], 1)
	assert.Equal(t, "plots_page_1", *rows[2][0].CallbackData)
	assert.Equal(t, "refresh_plots", *rows[3][0].CallbackData)
}

func TestHandler_Callback_Refresh(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().Catalog(mock.Anything, alice.ID, true).Return([]domain.Plot{{ID: 1}})
	f.catalog.EXPECT().UserBookings(mock.Anything, alice.ID, true).Return([]domain.Booking{{ID: 5}})

	require.NoError(t, f.handler.Handle(context.Background(), callback("refresh_plots")))
	require.NoError(t, f.handler.Handle(context.Background(), callback("refresh_bookings")))
}

func TestHandler_Callback_BackToCatalogUsesStoredPage(t *testing.T) {
	f := newHandlerFixture(t)

	sess := f.sessions.Get(alice.ID)
	sess.PlotsPage = 1
	f.sessions.Save(sess)

	f.catalog.EXPECT().CatalogPage(mock.Anything, alice.ID, 1).Return([]domain.Plot{{ID: 1}})

	require.NoError(t, f.handler.Handle(context.Background(), callback("back_to_catalog")))
}

func TestHandler_Callback_BookPlot(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().SelectPlot(mock.Anything, alice.ID, int64(1)).
		Return(domain.Plot{ID: 1, Title: "Lakeside", Price: 250000}, nil)

	require.NoError(t, f.handler.Handle(context.Background(), callback("book_1")))

	msg, ok := f.sender.last().(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "Бронирование участка")
	kb, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.True(t, kb.Keyboard[0][0].RequestContact)
}

func TestHandler_Callback_BookPlotUnavailable(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().SelectPlot(mock.Anything, alice.ID, int64(1)).
		Return(domain.Plot{}, domain.ErrPlotUnavailable)

	require.NoError(t, f.handler.Handle(context.Background(), callback("book_1")))

	assert.Contains(t, f.sender.texts()[0], "больше не доступен")
}

func TestHandler_AwaitingContact_Submits(t *testing.T) {
	f := newHandlerFixture(t)

	sess := f.sessions.Get(alice.ID)
	sess.AwaitContact(1)
	f.sessions.Save(sess)

	f.booking.EXPECT().SubmitContact(mock.Anything, alice, "+79991234567").
		Return(&domain.Booking{ID: 7, PlotTitle: "Lakeside", PlotPrice: 250000}, nil)

	ev := Event{Kind: EventContact, ChatID: 42, Customer: alice, Phone: "+79991234567"}
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	texts := f.sender.texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "Создаю бронирование")
	assert.Contains(t, texts[1], "#7")
	assert.Contains(t, texts[1], "250,000")
}

func TestHandler_AwaitingContact_Failure(t *testing.T) {
	f := newHandlerFixture(t)

	sess := f.sessions.Get(alice.ID)
	sess.AwaitContact(1)
	f.sessions.Save(sess)

	f.booking.EXPECT().SubmitContact(mock.Anything, alice, "+7").Return(nil, domain.ErrBookingFailed)

	ev := Event{Kind: EventContact, ChatID: 42, Customer: alice, Phone: "+7"}
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	assert.Contains(t, f.sender.texts()[1], "Не удалось создать бронирование")
}

func TestHandler_AwaitingContact_TextAborts(t *testing.T) {
	for _, ev := range []Event{
		textEvent(EventText, "hello"),
		{Kind: EventMenu, ChatID: 42, Customer: alice, Menu: MenuAbort},
		{Kind: EventCommand, ChatID: 42, Customer: alice, Command: "cancel"},
	} {
		f := newHandlerFixture(t)

		sess := f.sessions.Get(alice.ID)
		sess.AwaitContact(1)
		f.sessions.Save(sess)

		f.booking.EXPECT().AbortBooking(alice.ID).Return(true)

		require.NoError(t, f.handler.Handle(context.Background(), ev))
		assert.Equal(t, []string{"❌ Бронирование отменено"}, f.sender.texts())
	}
}

func TestHandler_AwaitingContact_MenuAbortsAndRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	sess := f.sessions.Get(alice.ID)
	sess.AwaitContact(1)
	f.sessions.Save(sess)

	f.booking.EXPECT().AbortBooking(alice.ID).Return(true)

	ev := textEvent(EventMenu, labelHelp)
	ev.Menu = MenuHelp
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	assert.Contains(t, f.sender.texts()[0], "Как пользоваться ботом")
}

func TestHandler_ContactOutsideFlow(t *testing.T) {
	f := newHandlerFixture(t)

	ev := Event{Kind: EventContact, ChatID: 42, Customer: alice, Phone: "+7"}
	require.NoError(t, f.handler.Handle(context.Background(), ev))

	assert.Contains(t, f.sender.texts()[0], "Я понимаю только команды из меню")
}

func TestHandler_Callback_ShowBooking(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().Booking(mock.Anything, alice.ID, int64(5)).
		Return(domain.Booking{ID: 5, Status: domain.BookingStatusConfirmed}, nil)

	require.NoError(t, f.handler.Handle(context.Background(), callback("booking_5")))

	edit := f.sender.last().(tgbotapi.EditMessageTextConfig)
	require.Len(t, edit.ReplyMarkup.InlineKeyboard, 1)
	assert.Equal(t, "back_to_bookings", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
}

func TestHandler_CancelFlow(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().RequestCancel(mock.Anything, alice.ID, int64(5)).
		Return(domain.Booking{ID: 5, Status: domain.BookingStatusPending}, nil)

	require.NoError(t, f.handler.Handle(context.Background(), callback("cancel_booking_5")))

	edit := f.sender.last().(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "Отмена бронирования")
	assert.Equal(t, "confirm_yes", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "confirm_no", *edit.ReplyMarkup.InlineKeyboard[0][1].CallbackData)

	f.booking.EXPECT().ConfirmCancel(mock.Anything, alice.ID).Return(int64(5), nil)
	f.catalog.EXPECT().UserBookings(mock.Anything, alice.ID, false).
		Return([]domain.Booking{{ID: 5, Status: domain.BookingStatusCancelled}})

	require.NoError(t, f.handler.Handle(context.Background(), callback("confirm_yes")))

	texts := f.sender.texts()
	assert.Equal(t, "✅ Бронь #5 успешно отменена!", texts[len(texts)-2])
	assert.Contains(t, texts[len(texts)-1], "Найдено броней: 1")
}

func TestHandler_CancelFlow_NotCancelable(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().RequestCancel(mock.Anything, alice.ID, int64(5)).
		Return(domain.Booking{}, domain.ErrBookingNotCancelable)

	require.NoError(t, f.handler.Handle(context.Background(), callback("cancel_booking_5")))

	assert.Contains(t, f.sender.texts()[0], "нельзя отменить")
}

func TestHandler_ConfirmYes_Failure(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().ConfirmCancel(mock.Anything, alice.ID).Return(int64(5), domain.ErrCancelFailed)

	require.NoError(t, f.handler.Handle(context.Background(), callback("confirm_yes")))

	assert.Equal(t, []string{"❌ Ошибка при отмене брони. Попробуйте позже."}, f.sender.texts())
}

func TestHandler_ConfirmNo(t *testing.T) {
	f := newHandlerFixture(t)

	f.booking.EXPECT().DeclineCancel(alice.ID).Return(true)
	f.catalog.EXPECT().UserBookingsPage(mock.Anything, alice.ID, 0).Return([]domain.Booking{{ID: 5}})

	require.NoError(t, f.handler.Handle(context.Background(), callback("confirm_no")))

	assert.Contains(t, f.sender.texts()[0], "Ваши бронирования")
}

func TestHandler_EditNotModifiedIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	f.sender.sendErr = &tgbotapi.Error{Code: 400, Message: "Bad Request: message is not modified"}

	f.catalog.EXPECT().CatalogPage(mock.Anything, alice.ID, 0).Return([]domain.Plot{{ID: 1}})

	assert.NoError(t, f.handler.Handle(context.Background(), callback("plots_page_0")))
}

func TestHandler_SendErrorPropagates(t *testing.T) {
	f := newHandlerFixture(t)
	f.sender.sendErr = errors.New("network down")

	ev := textEvent(EventCommand, "/help")
	ev.Command = "help"

	assert.Error(t, f.handler.Handle(context.Background(), ev))
}
