package service_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

// fakeBackend enforces the settlement rules the real backend owns.
type fakeBackend struct {
	mu           sync.Mutex
	requisitions map[int64]entity.Requisition
	settleCalls  int
}

func newFakeBackend(reqs ...entity.Requisition) *fakeBackend {
	b := &fakeBackend{requisitions: make(map[int64]entity.Requisition)}
	for _, r := range reqs {
		b.requisitions[r.ID] = r
	}

	return b
}

func (b *fakeBackend) FindByCode(_ context.Context, code string) (entity.Requisition, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range b.requisitions {
		if r.Code == code {
			return r, nil
		}
	}

	return entity.Requisition{}, &entity.BackendError{StatusCode: http.StatusNotFound, Kind: entity.ErrNotFound}
}

func (b *fakeBackend) Requisition(_ context.Context, id int64) (entity.Requisition, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.requisitions[id]
	if !ok {
		return entity.Requisition{}, &entity.BackendError{StatusCode: http.StatusNotFound, Kind: entity.ErrNotFound}
	}

	return r, nil
}

func (b *fakeBackend) Settle(_ context.Context, id int64, liters, amount decimal.Decimal) (entity.Requisition, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.settleCalls++

	r, ok := b.requisitions[id]
	if !ok {
		return entity.Requisition{}, &entity.BackendError{StatusCode: http.StatusNotFound, Kind: entity.ErrNotFound}
	}

	conflict := func(msg string) error {
		return &entity.BackendError{StatusCode: http.StatusUnprocessableEntity, Message: msg, Kind: entity.ErrConflict}
	}

	switch {
	case r.Status != entity.RequisitionStatusPending:
		return entity.Requisition{}, conflict("Voucher já utilizado")
	case r.ExpiredAt(time.Now()):
		return entity.Requisition{}, conflict("Voucher expirado")
	case !r.FillTank && r.Limit.Valid && amount.GreaterThan(r.Limit.Decimal):
		return entity.Requisition{}, conflict(fmt.Sprintf("Valor excede o limite de R$ %s", r.Limit.Decimal.StringFixed(2)))
	}

	r.Status = entity.RequisitionStatusValidated
	r.LitersDispensed = liters
	r.TotalAmount = amount
	r.UnitPrice = entity.RoundCurrency(amount.Div(liters))
	r.SettledAt = time.Now()

	b.requisitions[id] = r

	return r, nil
}

func (b *fakeBackend) CreateRequisition(_ context.Context, in entity.IssueRequest) (entity.Requisition, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := int64(len(b.requisitions) + 1)

	r := entity.Requisition{
		ID:         id,
		Code:       in.Code,
		VehicleID:  in.VehicleID,
		StationID:  in.StationID,
		FuelTypeID: in.FuelTypeID,
		Limit:      in.Limit,
		FillTank:   in.FillTank,
		IssuedAt:   time.Now(),
		ExpiresAt:  time.Now().Add(24 * time.Hour),
		Status:     entity.RequisitionStatusPending,
	}

	b.requisitions[id] = r

	return r, nil
}

func (b *fakeBackend) Me(context.Context) (entity.User, error) {
	return entity.User{ID: 1, Type: entity.UserTypeAdmin}, nil
}

func (b *fakeBackend) FuelPrices(context.Context) ([]entity.FuelPrice, error) {
	return nil, nil
}

func (b *fakeBackend) FuelPricesByType(context.Context, int64) ([]entity.FuelPrice, error) {
	return nil, nil
}
