//go:generate mockgen -source=../brick_repository.go     -destination=./mock_brick_repository.go     -package=mocks
//go:generate mockgen -source=../cart_repository.go      -destination=./mock_cart_repository.go      -package=mocks
//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../brick_cache.go          -destination=./mock_brick_cache.go          -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../catalog_read_service.go -destination=./mock_catalog_read_service.go -package=mocks
//go:generate mockgen -source=../cart_service.go         -destination=./mock_cart_service.go         -package=mocks
//go:generate mockgen -source=../order_read_service.go   -destination=./mock_order_read_service.go   -package=mocks

package mocks
