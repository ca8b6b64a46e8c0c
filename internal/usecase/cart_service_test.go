package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports/mocks"
	"github.com/bricklane/bricks-shop/internal/usecase"
	"github.com/golang/mock/gomock"
)

const customerID = "customer-1"

func TestAddItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	gomock.InOrder(
		bricks.EXPECT().GetByArticle(gomock.Any(), article).Return(&domain.Brick{Article: article, Stock: 10}, nil),
		carts.EXPECT().UpsertItem(gomock.Any(), customerID, article, 3).Return(nil),
	)

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	if err := svc.AddItem(context.Background(), customerID, article, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddItem_UnknownArticle(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	bricks.EXPECT().GetByArticle(gomock.Any(), "BRK-NOPE").Return(nil, nil)
	carts.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	err := svc.AddItem(context.Background(), customerID, "BRK-NOPE", 1)
	if !errors.Is(err, domain.ErrUnknownArticle) {
		t.Fatalf("want ErrUnknownArticle, got %v", err)
	}
}

func TestAddItem_NotEnoughStock(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	bricks.EXPECT().GetByArticle(gomock.Any(), article).Return(&domain.Brick{Article: article, Stock: 2}, nil)
	carts.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	err := svc.AddItem(context.Background(), customerID, article, 5)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
}

func TestCheckout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	carts.EXPECT().
		Checkout(gomock.Any(), customerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, cID, orderUID string) (*domain.Order, error) {
			if orderUID == "" {
				t.Fatalf("order uid must be generated")
			}
			return &domain.Order{OrderUID: orderUID, CustomerID: cID, TotalCents: 998}, nil
		})

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	order, err := svc.Checkout(context.Background(), customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.CustomerID != customerID || order.OrderUID == "" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	carts.EXPECT().Checkout(gomock.Any(), customerID, gomock.Any()).Return(nil, domain.ErrEmptyCart)

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	_, err := svc.Checkout(context.Background(), customerID)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_UniqueUIDs(t *testing.T) {
	ctrl := gomock.NewController(t)

	carts := mocks.NewMockCartRepository(ctrl)
	bricks := mocks.NewMockBrickRepository(ctrl)

	seen := map[string]bool{}
	carts.EXPECT().
		Checkout(gomock.Any(), customerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, cID, orderUID string) (*domain.Order, error) {
			if seen[orderUID] {
				t.Fatalf("duplicate order uid: %s", orderUID)
			}
			seen[orderUID] = true
			return &domain.Order{OrderUID: orderUID, CustomerID: cID}, nil
		}).
		Times(2)

	svc := usecase.NewCartService(carts, bricks, noopLogger{})

	for i := 0; i < 2; i++ {
		if _, err := svc.Checkout(context.Background(), customerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
