package bot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), CategoryTimeout},
		{"net timeout", timeoutErr{}, CategoryTimeout},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, CategoryNetwork},
		{"unavailable", fmt.Errorf("x: %w", domain.ErrUnavailable), CategoryNetwork},
		{"bad request", &tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"}, CategoryBadRequest},
		{"forbidden", fmt.Errorf("send: %w", &tgbotapi.Error{Code: 403, Message: "Forbidden"}), CategoryForbidden},
		{"other api error", &tgbotapi.Error{Code: 500}, CategoryGeneric},
		{"panic", panicError("boom"), CategoryGeneric},
		{"plain", errors.New("boom"), CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.err))
		})
	}
}

func TestErrorText(t *testing.T) {
	assert.Contains(t, ErrorText(CategoryNetwork), "Проблемы с соединением")
	assert.Contains(t, ErrorText(CategoryTimeout), "Превышено время ожидания")
	assert.Contains(t, ErrorText(CategoryBadRequest), "Некорректный запрос")
	assert.Contains(t, ErrorText(CategoryForbidden), "Нет доступа")
	assert.Equal(t, ErrorText(CategoryGeneric), ErrorText(ErrorCategory(99)))
}
