package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
)

// Проверка, что StockValidator удовлетворяет интерфейсу StockValidator.
var _ ports.StockValidator = (*StockValidator)(nil)

// ErrInvalidStockUpdate — базовая (sentinel error) ошибка валидации.
var ErrInvalidStockUpdate = errors.New("stock update validation failed")

// StockValidator — валидация сообщений об изменении остатков.
type StockValidator struct{}

// NewStockValidator — конструктор StockValidator.
// Возвращает ErrInvalidStockUpdate (с обёрнутой причиной) при любой проблеме.
func NewStockValidator() *StockValidator { return &StockValidator{} }

// Validate — проверяет корректность полей сообщения.
func (v *StockValidator) Validate(_ context.Context, upd *domain.StockUpdate) error {
	if upd == nil {
		return fmt.Errorf("%w: сообщение не может быть nil", ErrInvalidStockUpdate)
	}
	if strings.TrimSpace(upd.Article) == "" {
		return fmt.Errorf("%w: article обязателен", ErrInvalidStockUpdate)
	}
	if upd.Stock < 0 {
		return fmt.Errorf("%w: stock должен быть неотрицательным", ErrInvalidStockUpdate)
	}
	// PriceCents <= 0 — валидное значение: «цену не трогать».
	if !upd.UpdatedAt.IsZero() && upd.UpdatedAt.After(time.Now().Add(24*time.Hour)) {
		return fmt.Errorf("%w: updated_at из будущего", ErrInvalidStockUpdate)
	}
	return nil
}
