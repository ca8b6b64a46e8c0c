package validate

import (
	"context"
	"errors"
	"testing"
)

func TestValidateStockFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewStockValidator()

	raw := []byte(`{"article":"BRK-2x4-RED","stock":10,"price_cents":499,"updated_at":"2026-08-20T10:00:00Z"}`)

	upd, err := ValidateStockFromJSON(ctx, validator, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Article != "BRK-2x4-RED" || upd.Stock != 10 || upd.PriceCents != 499 {
		t.Fatalf("unexpected payload: %+v", upd)
	}
}

func TestValidateStockFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewStockValidator()

	raw := []byte(`{"article":"BRK-1","stock":1,"warehouse":"msk"}`)

	_, err := ValidateStockFromJSON(ctx, validator, raw)
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if !errors.Is(err, ErrInvalidStockUpdate) {
		t.Fatalf("expected ErrInvalidStockUpdate, got: %v", err)
	}
}

func TestValidateStockFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewStockValidator()

	raw := []byte(`{"article":"BRK-1","stock":1}{"article":"BRK-2","stock":2}`)

	_, err := ValidateStockFromJSON(ctx, validator, raw)
	if err == nil {
		t.Fatalf("expected error for trailing data")
	}
	if !errors.Is(err, ErrInvalidStockUpdate) {
		t.Fatalf("expected ErrInvalidStockUpdate, got: %v", err)
	}
}

func TestValidateStockFromJSON_InvalidPayload(t *testing.T) {
	ctx := context.Background()
	validator := NewStockValidator()

	raw := []byte(`{"article":"","stock":1}`)

	_, err := ValidateStockFromJSON(ctx, validator, raw)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrInvalidStockUpdate) {
		t.Fatalf("expected ErrInvalidStockUpdate, got: %v", err)
	}
}

func TestValidateStockFromJSON_BrokenJSON(t *testing.T) {
	ctx := context.Background()
	validator := NewStockValidator()

	_, err := ValidateStockFromJSON(ctx, validator, []byte(`{"article":`))
	if err == nil {
		t.Fatalf("expected error for broken json")
	}
	// битый JSON — перманентно невалидное сообщение, не временная ошибка
	if !errors.Is(err, ErrInvalidStockUpdate) {
		t.Fatalf("expected ErrInvalidStockUpdate, got: %v", err)
	}
}
