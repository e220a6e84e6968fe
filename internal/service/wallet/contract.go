//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"settlement/internal/entities"
)

type Repository interface {
	GetRider(ctx context.Context, riderID int64) (*entities.RiderWallet, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (*entities.RestaurantWallet, error)
	ApplyRiderPenalty(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error)
	WithdrawRider(ctx context.Context, riderID, amount int64) (*entities.RiderWallet, error)
	PayoutRestaurant(ctx context.Context, restaurantID, amount int64) (*entities.RestaurantWallet, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
	List(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
