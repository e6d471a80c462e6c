package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/presentation"
)

type MenuButton int

const (
	MenuNone MenuButton = iota
	MenuCatalog
	MenuBookings
	MenuHelp
	MenuContacts
	MenuBackToMenu
	MenuAbort
)

const (
	labelCatalog    = "🏞 Каталог участков"
	labelBookings   = "📋 Мои брони"
	labelHelp       = "🆘 Помощь"
	labelContacts   = "📞 Контакты"
	labelBackToMenu = "↩️ В главное меню"
	labelAbort      = "↩️ Отмена"
	labelSendPhone  = "📱 Отправить контакт"
)

var menuButtons = map[string]MenuButton{
	labelCatalog:    MenuCatalog,
	labelBookings:   MenuBookings,
	labelHelp:       MenuHelp,
	labelContacts:   MenuContacts,
	labelBackToMenu: MenuBackToMenu,
	labelAbort:      MenuAbort,
}

func replyMarkup(k presentation.ReplyKeyboard) any {
	switch k {
	case presentation.ReplyMainMenu:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelCatalog)),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(labelBookings),
				tgbotapi.NewKeyboardButton(labelHelp),
			),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelContacts)),
		)
	case presentation.ReplyBackToMenu:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelBackToMenu)),
		)
	case presentation.ReplyContactRequest:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(labelSendPhone)),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelAbort)),
		)
	default:
		return nil
	}
}

// inlineMarkup returns nil for a view without controls.
func inlineMarkup(v presentation.View) *tgbotapi.InlineKeyboardMarkup {
	if len(v.Controls) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Controls))
	for _, row := range v.Controls {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, c := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Command.Encode()))
		}
		rows = append(rows, buttons)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

// newMessage sends v as a new message. Inline controls take precedence over
// the reply keyboard since Telegram allows one markup per message.
func newMessage(chatID int64, v presentation.View) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, v.Text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if markup := inlineMarkup(v); markup != nil {
		msg.ReplyMarkup = *markup
	} else if markup := replyMarkup(v.Reply); markup != nil {
		msg.ReplyMarkup = markup
	}

	return msg
}

// editMessage replaces the text and inline controls of a message in place.
func editMessage(chatID int64, messageID int, v presentation.View) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, v.Text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	edit.ReplyMarkup = inlineMarkup(v)
	return edit
}
