package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/mocks"
	"github.com/samandr77/microservices/voucher/internal/service"
)

func TestPriceCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockPriceSource(ctrl)

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	source.EXPECT().FuelPrices(gomock.Any()).Return([]entity.FuelPrice{
		{ID: 1, FuelTypeID: 1, Price: d("5.59"), ValidUntil: past},
		{ID: 2, FuelTypeID: 1, Price: d("5.89"), ValidUntil: future},
		{ID: 3, FuelTypeID: 2, Price: d("6.20")},
	}, nil)

	c := service.NewPriceCache(source)
	require.NoError(t, c.Refresh(context.Background()))

	price, ok, err := c.Current(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), price.ID)

	// a failed refresh keeps what was loaded before
	source.EXPECT().FuelPrices(gomock.Any()).Return(nil, errors.New("backend down"))
	require.Error(t, c.Refresh(context.Background()))

	price, ok, err = c.Current(context.Background(), 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "6.2", price.Price.String())

	// a miss falls back to the per type lookup once
	source.EXPECT().FuelPricesByType(gomock.Any(), int64(3)).Return([]entity.FuelPrice{
		{ID: 4, FuelTypeID: 3, Price: d("4.10"), ValidUntil: future},
	}, nil)

	price, ok, err = c.Current(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), price.ID)

	price, ok, err = c.Current(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), price.ID)
}

func TestService_Estimate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	backend.EXPECT().FuelPricesByType(gomock.Any(), int64(1)).Return([]entity.FuelPrice{
		{ID: 1, FuelTypeID: 1, Price: d("5.89")},
	}, nil)
	backend.EXPECT().FuelPricesByType(gomock.Any(), int64(2)).Return(nil, entity.ErrNetwork)

	s := service.New(backend, nil, nil, nil)

	req := pending(1, "ABCD-EFGH-JKMN-PQRS")

	est := s.Estimate(context.Background(), req)
	require.Equal(t, "5.89", est.PricePerLiter.Decimal.String())
	require.Equal(t, "16.977", est.EstimatedLiters.Decimal.String())

	req.FillTank = true
	est = s.Estimate(context.Background(), req)
	require.True(t, est.PricePerLiter.Valid)
	require.False(t, est.EstimatedLiters.Valid)

	// no price: the limit alone is shown
	req = pending(2, "ZZZZ-ZZZZ-ZZZZ-ZZZZ")
	req.FuelTypeID = 2

	est = s.Estimate(context.Background(), req)
	require.False(t, est.PricePerLiter.Valid)
	require.False(t, est.EstimatedLiters.Valid)
	require.True(t, est.Limit.Valid)
}
