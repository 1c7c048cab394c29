package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"banquet/infras/otel"
	"banquet/infras/postgres"
	"banquet/internal/domains/payment/model"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/logger"
	gRepo "banquet/shared/repository"
)

type CustomerPayment interface {
	Insert(ctx context.Context, model model.CustomerPayment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CustomerPayment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CustomerPayment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type customerPaymentImpl struct {
	gRepo.Repository[model.CustomerPayment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCustomerPayment(db *postgres.Connection, otel otel.Otel) CustomerPayment {
	return &customerPaymentImpl{
		Repository: gRepo.NewRepository[model.CustomerPayment](model.CustomerPaymentEntityName, model.CustomerPaymentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type LaborPayment interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LaborPayment, error)
	ReplaceForBooking(ctx context.Context, bookingID string, records []model.LaborPayment) error
	DeleteByBooking(ctx context.Context, bookingID string) error
}

type laborPaymentImpl struct {
	gRepo.Repository[model.LaborPayment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLaborPayment(db *postgres.Connection, otel otel.Otel) LaborPayment {
	return &laborPaymentImpl{
		Repository: gRepo.NewRepository[model.LaborPayment](model.LaborPaymentEntityName, model.LaborPaymentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceForBooking swaps the booking's labor snapshot atomically: prior
// records are removed and the new set inserted in one transaction.
func (repo *laborPaymentImpl) ReplaceForBooking(ctx context.Context, bookingID string, records []model.LaborPayment) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".labor payment.ReplaceForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin labor payment transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.DeleteTx(ctx, tx, filterByBooking(bookingID)); err != nil {
		return fmt.Errorf("failed to clear labor payments: %w", err)
	}

	if len(records) > 0 {
		if err = repo.InsertBulkTx(ctx, tx, records); err != nil {
			return fmt.Errorf("failed to insert labor payments: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit labor payment transaction: %w", err)
	}

	return nil
}

func (repo *laborPaymentImpl) DeleteByBooking(ctx context.Context, bookingID string) error {
	return repo.Delete(ctx, filterByBooking(bookingID)) //nolint:wrapcheck
}

func filterByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LaborPaymentTableName,
			},
		},
	}
}
