package presentation

import (
	"fmt"

	"github.com/stpnv0/LandBooker/internal/command"
	"github.com/stpnv0/LandBooker/internal/domain"
)

const supportPhone = "+7 (999) 123-45-67"

func Welcome(c domain.Customer) View {
	return View{
		Text: fmt.Sprintf(`👋 Привет, %s!

<b>LandBooking Bot</b> - поможет тебе найти и забронировать идеальный земельный участок!

🏞 <b>Что я умею:</b>
• Показать каталог доступных участков
• Забронировать понравившийся участок
• Показать твои текущие бронирования
• Ответить на вопросы

Выбери действие в меню ниже 👇`, esc(c.FirstName)),
		Reply: ReplyMainMenu,
	}
}

func Help() View {
	return View{Text: `🆘 <b>Как пользоваться ботом:</b>

1. <b>🏞 Каталог участков</b> - просмотри все доступные участки
2. <b>📋 Мои брони</b> - посмотри свои текущие бронирования
3. <b>📞 Контакты</b> - свяжись с нами для консультации

<b>Процесс бронирования:</b>
1. Выбери участок из каталога
2. Нажми "Забронировать"
3. Укажи свои контактные данные
4. Подтверди бронирование

<b>Статусы броней:</b>
⏳ <b>pending</b> - ожидает подтверждения менеджером
✅ <b>confirmed</b> - подтверждена менеджером
❌ <b>rejected</b> - отклонена менеджером
🏁 <b>completed</b> - сделка завершена
🚫 <b>cancelled</b> - отменена

<b>Нужна помощь?</b>
📞 ` + supportPhone + `
📧 support@land-site.ru`}
}

func Contacts() View {
	return View{
		Text: `🏢 <b>Наши контакты</b>

📞 <b>Телефон для консультаций:</b> ` + supportPhone + `
📧 <b>Email:</b> info@land-site.ru
🌐 <b>Сайт:</b> www.land-site.ru

📍 <b>Адрес офиса:</b>
Москва, ул. Примерная, д. 123

⏰ <b>Время работы:</b>
Пн-Пт: 9:00-18:00
Сб: 10:00-16:00
Вс: выходной`,
		Reply: ReplyMainMenu,
	}
}

func Support() View {
	return View{
		Text: `🆘 <b>Техническая поддержка</b>

Если у вас возникли проблемы с работой бота:

<b>Для срочных вопросов:</b>
📞 Телефон: +7 (999) 123-45-69
📧 Email: support@land-site.ru

<b>Что указать в обращении:</b>
• Ваше имя и контакты
• Суть проблемы
• Когда произошла ошибка`,
		Reply: ReplyMainMenu,
	}
}

func FAQ() View {
	return View{Text: `❓ <b>Часто задаваемые вопросы</b>

<b>Q: Что делать если я передумал?</b>
A: Вы можете отменить бронь в разделе "Мои брони", пока она ожидает подтверждения.

<b>Q: Что делать после подтверждения брони?</b>
A: Наш менеджер свяжется с вами для оформления документов.

<b>Q: Можно ли изменить данные в брони?</b>
A: Для изменения данных свяжитесь с менеджером.

<b>Q: Что если участок уже забронирован?</b>
A: В каталоге отображаются только доступные участки.`}
}

func Feedback() View {
	return View{Text: `💡 <b>Обратная связь и предложения</b>

Мы будем рады вашим предложениям по улучшению сервиса!

<b>Куда отправлять предложения:</b>
📧 Email: product@land-site.ru`}
}

func MainMenu() View {
	return View{Text: "🏠 <b>Главное меню</b>\n\nВыберите действие:", Reply: ReplyMainMenu}
}

func ActionCancelled() View {
	return View{Text: "↩️ Действие отменено", Reply: ReplyMainMenu}
}

func UnknownInput() View {
	return View{
		Text:  "Я понимаю только команды из меню 😊\n\nИспользуй кнопки ниже для навигации:",
		Reply: ReplyMainMenu,
	}
}

func LoadingCatalog() View {
	return View{Text: "🔄 Загружаю каталог участков...", Reply: ReplyBackToMenu}
}

func NoPlots() View {
	return View{
		Text: "😔 На данный момент нет доступных участков.\n\n" +
			"Попробуйте позже или свяжитесь с нами для уточнения информации.",
	}
}

func LoadingBookings() View {
	return View{Text: "🔄 Загружаю ваши бронирования...", Reply: ReplyBackToMenu}
}

func NoBookings() View {
	return View{
		Text: "📭 У вас пока нет бронирований.\n\n" +
			"Перейдите в каталог участков чтобы сделать первую бронь! 🏞",
	}
}

func PlotNotFound() View {
	return View{Text: "❌ Участок не найден"}
}

func PlotUnavailable() View {
	return View{Text: "😔 Этот участок больше не доступен для бронирования"}
}

func BookingNotFound() View {
	return View{Text: "❌ Бронь не найдена"}
}

// BookingPrompt asks for the customer's phone after a plot was selected.
func (r *Renderer) BookingPrompt(p domain.Plot) View {
	return View{
		Text: fmt.Sprintf(`📋 <b>Бронирование участка</b>

🏞 <b>Участок:</b> %s
💰 <b>Цена:</b> %s руб.
📏 <b>Площадь:</b> %s
📍 <b>Местоположение:</b> %s

Для завершения бронирования отправьте свои контактные данные.

Нажмите кнопку ниже чтобы отправить телефон:`,
			esc(p.Title), r.Price(p.Price), esc(p.Area), esc(p.Location)),
		Reply: ReplyContactRequest,
	}
}

func CreatingBooking() View {
	return View{Text: "🔄 Создаю бронирование..."}
}

func (r *Renderer) BookingCreated(b domain.Booking) View {
	return View{
		Text: fmt.Sprintf(`🎉 <b>Бронирование создано успешно!</b>

📋 <b>Номер брони:</b> #%d
🏞 <b>Участок:</b> %s
💰 <b>Цена:</b> %s руб.

⏳ <b>Статус:</b> Ожидает подтверждения менеджером

Наш менеджер свяжется с вами в ближайшее время для уточнения деталей.

Вы можете отслеживать статус брони в разделе "📋 Мои брони"`,
			b.ID, esc(b.PlotTitle), r.Price(b.PlotPrice)),
		Reply: ReplyMainMenu,
	}
}

func BookingFailed() View {
	return View{
		Text: `❌ <b>Не удалось создать бронирование</b>

Пожалуйста, попробуйте позже или свяжитесь с нами по телефону:

📞 ` + supportPhone,
		Reply: ReplyMainMenu,
	}
}

func NoSelectedPlot() View {
	return View{Text: "❌ Ошибка: участок не найден", Reply: ReplyMainMenu}
}

func BookingAborted() View {
	return View{Text: "❌ Бронирование отменено", Reply: ReplyMainMenu}
}

func CancelPrompt() View {
	return View{
		Text: `🚫 <b>Отмена бронирования</b>

Вы уверены что хотите отменить эту бронь?

После отмены вы сможете забронировать этот участок снова, если он будет еще доступен.`,
		Controls: [][]Control{{
			{Label: "✅ Да", Command: command.ConfirmYes()},
			{Label: "❌ Нет", Command: command.ConfirmNo()},
		}},
	}
}

func BookingNotCancelable() View {
	return View{Text: "⛔️ Эту бронь нельзя отменить. Свяжитесь с менеджером: " + supportPhone}
}

func CancelSucceeded(id int64) View {
	return View{Text: fmt.Sprintf("✅ Бронь #%d успешно отменена!", id)}
}

func CancelFailed() View {
	return View{Text: "❌ Ошибка при отмене брони. Попробуйте позже."}
}

func NoPendingCancel() View {
	return View{Text: "❌ Ошибка: бронь не найдена"}
}
