package domain

import "errors"

// Бизнес-ошибки, различимые на уровне HTTP.
var (
	ErrUnknownArticle    = errors.New("unknown article")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)
