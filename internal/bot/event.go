package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
)

type EventKind int

const (
	EventUnsupported EventKind = iota
	EventCommand
	EventMenu
	EventContact
	EventText
	EventCallback
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventMenu:
		return "menu"
	case EventContact:
		return "contact"
	case EventText:
		return "text"
	case EventCallback:
		return "callback"
	default:
		return "unsupported"
	}
}

// Event is an inbound update reduced to what the handlers need.
type Event struct {
	Kind     EventKind
	UpdateID int
	ChatID   int64
	Customer domain.Customer

	// MessageID is the message a callback was pressed on.
	MessageID  int
	CallbackID string
	Data       string

	Command string
	Menu    MenuButton
	Phone   string
	Text    string
}

// Classify turns an update into an Event. Updates without a chat or a sender
// are EventUnsupported.
func Classify(u tgbotapi.Update) Event {
	ev := Event{UpdateID: u.UpdateID}

	switch {
	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		ev.Kind = EventCallback
		ev.CallbackID = q.ID
		ev.Data = q.Data
		ev.Customer = customer(q.From)
		if q.Message != nil && q.Message.Chat != nil {
			ev.ChatID = q.Message.Chat.ID
			ev.MessageID = q.Message.MessageID
		}
		if ev.ChatID == 0 || q.From == nil {
			ev.Kind = EventUnsupported
		}
		return ev

	case u.Message != nil:
		m := u.Message
		if m.Chat == nil || m.From == nil {
			return ev
		}
		ev.ChatID = m.Chat.ID
		ev.Customer = customer(m.From)
		ev.Text = m.Text

		switch {
		case m.Contact != nil:
			ev.Kind = EventContact
			ev.Phone = m.Contact.PhoneNumber
		case m.IsCommand():
			ev.Kind = EventCommand
			ev.Command = strings.ToLower(m.Command())
		case m.Text != "":
			if b, ok := menuButtons[strings.TrimSpace(m.Text)]; ok {
				ev.Kind = EventMenu
				ev.Menu = b
			} else {
				ev.Kind = EventText
			}
		}
		return ev
	}

	return ev
}

func customer(u *tgbotapi.User) domain.Customer {
	if u == nil {
		return domain.Customer{}
	}
	return domain.Customer{
		ID:        u.ID,
		Username:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
