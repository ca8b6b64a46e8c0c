package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
)

// ValidateStockFromJSON — валидация сообщения об остатках из JSON.
func ValidateStockFromJSON(ctx context.Context, validator ports.StockValidator, raw []byte) (*domain.StockUpdate, error) {
	var upd domain.StockUpdate
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	// Ошибки декодирования — тоже ErrInvalidStockUpdate: битый payload
	// перманентно невалиден, его нельзя трактовать как временную ошибку.
	if err := dec.Decode(&upd); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidStockUpdate, err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidStockUpdate)
	}
	if err := validator.Validate(ctx, &upd); err != nil {
		return nil, err
	}
	return &upd, nil
}
