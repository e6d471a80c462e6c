package bot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
)

type ErrorCategory int

const (
	CategoryGeneric ErrorCategory = iota
	CategoryNetwork
	CategoryTimeout
	CategoryBadRequest
	CategoryForbidden
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryNetwork:
		return "network"
	case CategoryTimeout:
		return "timeout"
	case CategoryBadRequest:
		return "bad_request"
	case CategoryForbidden:
		return "forbidden"
	default:
		return "generic"
	}
}

// errPanic marks a recovered handler panic.
var errPanic = errors.New("handler panicked")

func panicError(r any) error {
	return fmt.Errorf("%w: %v", errPanic, r)
}

// Categorize maps a handler error to the message the user sees.
func Categorize(err error) ErrorCategory {
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return CategoryTimeout
		}
		return CategoryNetwork
	}

	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		switch tgErr.Code {
		case http.StatusBadRequest:
			return CategoryBadRequest
		case http.StatusForbidden:
			return CategoryForbidden
		}
	}

	if errors.Is(err, domain.ErrUnavailable) {
		return CategoryNetwork
	}

	return CategoryGeneric
}

var errorTexts = map[ErrorCategory]string{
	CategoryNetwork: `🔌 <b>Проблемы с соединением</b>

Не удалось подключиться к серверу. Пожалуйста:
• Проверьте ваше интернет-соединение
• Попробуйте снова через несколько минут

Если проблема повторяется, обратитесь в поддержку.`,
	CategoryTimeout: `⏰ <b>Превышено время ожидания</b>

Сервер не ответил вовремя. Попробуйте повторить запрос через минуту.`,
	CategoryBadRequest: `❌ <b>Некорректный запрос</b>

Произошла ошибка при обработке вашего запроса.
Попробуйте начать заново с команды /start`,
	CategoryForbidden: `🔒 <b>Нет доступа</b>

Бот не может отправить вам сообщение.
Пожалуйста, запустите бота командой /start`,
	CategoryGeneric: `😵 <b>Произошла непредвиденная ошибка</b>

Мы уже работаем над устранением проблемы.
Попробуйте повторить действие через несколько минут.

Если ошибка повторяется, обратитесь в поддержку.`,
}

func ErrorText(c ErrorCategory) string {
	if text, ok := errorTexts[c]; ok {
		return text
	}
	return errorTexts[CategoryGeneric]
}
