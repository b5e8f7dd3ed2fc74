package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/mocks"
	"github.com/samandr77/microservices/voucher/internal/service"
	"github.com/samandr77/microservices/voucher/internal/voucher"
	"github.com/samandr77/microservices/voucher/pkg/broker"
)

var (
	attendant = entity.User{ID: 8, Email: "frentista@posto.com", Type: entity.UserTypeSupplier, SupplierID: 4}
	manager   = entity.User{ID: 9, Email: "gestor@prefeitura.gov", Type: entity.UserTypeManager}
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pending(id int64, code string) entity.Requisition {
	return entity.Requisition{
		ID:           id,
		Code:         code,
		StationID:    5,
		FuelTypeID:   1,
		IssuedAt:     time.Now().Add(-time.Hour),
		ExpiresAt:    time.Now().Add(time.Hour),
		Limit:        decimal.NewNullDecimal(d("100.00")),
		Status:       entity.RequisitionStatusPending,
		VehiclePlate: "ABC1D23",
	}
}

func TestService_Locate(t *testing.T) {
	t.Parallel()

	const code = "ABCD-EFGH-JKMN-PQRS"

	used := pending(2, code)
	used.Status = entity.RequisitionStatusValidated

	expired := pending(3, code)
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	expiredStatus := pending(4, code)
	expiredStatus.Status = entity.RequisitionStatusExpired

	cancelled := pending(5, code)
	cancelled.Status = entity.RequisitionStatusCancelled

	other := pending(6, "ZZZZ-ZZZZ-ZZZZ-ZZZZ")

	tests := []struct {
		name    string
		input   string
		setup   func(b *mocks.MockBackend)
		wantID  int64
		wantErr error
	}{
		{
			name:    "empty code",
			input:   "   ",
			setup:   func(*mocks.MockBackend) {},
			wantErr: entity.ErrValidation,
		},
		{
			name:  "typed in lower case",
			input: " abcd-efgh-jkmn-pqrs ",
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(pending(1, code), nil)
			},
			wantID: 1,
		},
		{
			name:  "unknown code",
			input: "A7F9-29QK-4C1M",
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), "A7F9-29QK-4C1M").Return(entity.Requisition{},
					&entity.BackendError{StatusCode: http.StatusNotFound, Message: "Requisição 991 não existe", Kind: entity.ErrNotFound})
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name:  "already used",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(used, nil)
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name:  "cancelled",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(cancelled, nil)
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name:  "expired while still pending",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(expired, nil)
			},
			wantErr: entity.ErrExpired,
		},
		{
			name:  "expired status",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(expiredStatus, nil)
			},
			wantErr: entity.ErrExpired,
		},
		{
			name:  "backend answered with another code",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(other, nil)
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name:  "requisition without code",
			input: "req-12",
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().Requisition(gomock.Any(), int64(12)).Return(pending(12, ""), nil)
			},
			wantID: 12,
		},
		{
			name:  "network failure",
			input: code,
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().FindByCode(gomock.Any(), code).Return(entity.Requisition{}, entity.ErrNetwork)
			},
			wantErr: entity.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)
			tt.setup(backend)

			s := service.New(backend, nil, nil, nil)

			req, err := s.Locate(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, entity.UserMessage(err))

				if errors.Is(tt.wantErr, entity.ErrNotFound) {
					// used, cancelled and unknown codes must read the same
					require.Equal(t, entity.ErrNotFound.Error(), err.Error())
				}

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantID, req.ID)
		})
	}
}

func TestService_Settle_InvalidInputMakesNoBackendCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		liters, amount decimal.Decimal
	}{
		{"zero liters", d("0"), d("58.90")},
		{"negative liters", d("-1"), d("58.90")},
		{"zero amount", d("10"), d("0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)

			s := service.New(backend, nil, nil, nil)
			ctx := entity.CtxWithUser(context.Background(), attendant)

			_, err := s.Settle(ctx, 1, tt.liters, tt.amount)
			require.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestService_Settle_Permissions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	s := service.New(backend, nil, nil, nil)

	_, err := s.Settle(context.Background(), 1, d("10"), d("58.9"))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, err = s.Settle(entity.CtxWithUser(context.Background(), manager), 1, d("10"), d("58.9"))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_Settle_SecondSettlementConflicts(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(pending(1, "ABCD-EFGH-JKMN-PQRS"))
	s := service.New(backend, nil, nil, nil)
	ctx := entity.CtxWithUser(context.Background(), attendant)

	st, err := s.Settle(ctx, 1, d("23.5"), d("99.00"))
	require.NoError(t, err)
	require.Equal(t, entity.RequisitionStatusValidated, st.Requisition.Status)

	_, err = s.Settle(ctx, 1, d("23.5"), d("99.00"))
	require.ErrorIs(t, err, entity.ErrConflict)
	require.Equal(t, "Voucher já utilizado", entity.UserMessage(err))
	require.Equal(t, 2, backend.settleCalls)

	_, err = s.Locate(ctx, "ABCD-EFGH-JKMN-PQRS")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Settle_TotalNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	amounts := []string{"100.01", "150", "100.00", "99.99", "0.01"}

	for _, amount := range amounts {
		t.Run(amount, func(t *testing.T) {
			t.Parallel()

			req := pending(1, "ABCD-EFGH-JKMN-PQRS")
			s := service.New(newFakeBackend(req), nil, nil, nil)

			st, err := s.Settle(entity.CtxWithUser(context.Background(), attendant), 1, d("10"), d(amount))
			if err != nil {
				require.ErrorIs(t, err, entity.ErrConflict)
				require.True(t, d(amount).GreaterThan(req.Limit.Decimal))

				return
			}

			require.True(t, st.Requisition.TotalAmount.LessThanOrEqual(req.Limit.Decimal))
		})
	}
}

func TestService_Settle_FillTankHasNoCeiling(t *testing.T) {
	t.Parallel()

	req := pending(1, "ABCD-EFGH-JKMN-PQRS")
	req.FillTank = true
	req.Limit = decimal.NullDecimal{}

	s := service.New(newFakeBackend(req), nil, nil, nil)

	st, err := s.Settle(entity.CtxWithUser(context.Background(), attendant), 1, d("52.3"), d("320.10"))
	require.NoError(t, err)
	require.Equal(t, "320.1", st.Requisition.TotalAmount.String())
}

func TestService_Settle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	ctx := entity.CtxWithUser(context.Background(), attendant)

	settled := pending(42, "ABCD-EFGH-JKMN-PQRS")
	settled.Status = entity.RequisitionStatusValidated
	settled.LitersDispensed = d("23.5")
	settled.TotalAmount = d("140.00")
	settled.SettledAt = time.Now()

	backend.EXPECT().Settle(ctx, int64(42), d("23.5"), d("140.00")).Return(settled, nil)

	repo.EXPECT().SaveReceipt(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r entity.Receipt) error {
		require.Equal(t, int64(42), r.RequisitionID)
		require.Equal(t, "ABCD-EFGH-JKMN-PQRS", r.Code)
		require.Equal(t, attendant.ID, r.SettledBy)
		require.Equal(t, "R$ 100.00", r.LimitText)
		require.Equal(t, "5.96", r.UnitPrice.StringFixed(2))

		return errors.New("db is down")
	})

	producer.EXPECT().SendVoucherSettled(ctx, gomock.Any()).Do(func(_ context.Context, e broker.VoucherSettledEvent) {
		require.Equal(t, int64(42), e.RequisitionID)
		require.Equal(t, "140", e.TotalAmount.String())
	})

	mailer.EXPECT().SendReceipt(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ entity.Receipt, pdf []byte) error {
		require.NotEmpty(t, pdf)
		return errors.New("smtp timeout")
	})

	s := service.New(backend, repo, producer, mailer)

	st, err := s.Settle(ctx, 42, d("23.5"), d("140.00"))
	require.NoError(t, err)

	require.Equal(t, "5.96", st.UnitPriceDisplay())
	require.True(t, st.UnitPrice.GreaterThan(d("5.957446")))
	require.True(t, st.UnitPrice.LessThan(d("5.957447")))
	require.Equal(t, entity.RequisitionStatusValidated, st.Requisition.Status)
}

func TestService_Settle_LostResponse(t *testing.T) {
	t.Parallel()

	settled := pending(42, "ABCD-EFGH-JKMN-PQRS")
	settled.Status = entity.RequisitionStatusValidated
	settled.LitersDispensed = d("23.5")
	settled.TotalAmount = d("140")
	settled.SettledAt = time.Now()

	tests := []struct {
		name     string
		readBack entity.Requisition
		readErr  error
		wantErr  error
	}{
		{
			name:     "settled with the same amounts",
			readBack: settled,
		},
		{
			name:     "still pending",
			readBack: pending(42, "ABCD-EFGH-JKMN-PQRS"),
			wantErr:  entity.ErrNetwork,
		},
		{
			name: "settled with other amounts",
			readBack: func() entity.Requisition {
				r := settled
				r.TotalAmount = d("120")
				return r
			}(),
			wantErr: entity.ErrNetwork,
		},
		{
			name:    "read back fails",
			readErr: entity.ErrNetwork,
			wantErr: entity.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)

			// exactly one mutation, the rest is read-only
			backend.EXPECT().Settle(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
				Return(entity.Requisition{}, entity.ErrNetwork).Times(1)
			backend.EXPECT().Requisition(gomock.Any(), int64(42)).Return(tt.readBack, tt.readErr)

			s := service.New(backend, nil, nil, nil)

			st, err := s.Settle(entity.CtxWithUser(context.Background(), attendant), 42, d("23.5"), d("140"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(42), st.Requisition.ID)
		})
	}
}

func TestService_Settle_UnusableResponse(t *testing.T) {
	t.Parallel()

	settled := pending(42, "ABCD-EFGH-JKMN-PQRS")
	settled.Status = entity.RequisitionStatusValidated
	settled.LitersDispensed = d("23.5")
	settled.TotalAmount = d("140")
	settled.SettledAt = time.Now()

	tests := []struct {
		name     string
		response entity.Requisition
	}{
		{
			name:     "still pending without settlement fields",
			response: pending(42, "ABCD-EFGH-JKMN-PQRS"),
		},
		{
			name: "validated without liters",
			response: func() entity.Requisition {
				r := settled
				r.LitersDispensed = decimal.Zero
				return r
			}(),
		},
		{
			name: "validated without amount",
			response: func() entity.Requisition {
				r := settled
				r.TotalAmount = decimal.Zero
				return r
			}(),
		},
		{
			name: "validated without settlement time",
			response: func() entity.Requisition {
				r := settled
				r.SettledAt = time.Time{}
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)
			repo := mocks.NewMockRepository(ctrl)
			producer := mocks.NewMockProducer(ctrl)
			mailer := mocks.NewMockMailer(ctrl)

			// nothing is journaled, published or mailed from a record the backend did not confirm
			backend.EXPECT().Settle(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).Return(tt.response, nil)

			s := service.New(backend, repo, producer, mailer)

			_, err := s.Settle(entity.CtxWithUser(context.Background(), attendant), 42, d("23.5"), d("140"))
			require.ErrorIs(t, err, entity.ErrBadResponse)
		})
	}
}

func TestService_Reconcile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Requisition(gomock.Any(), int64(7)).Return(pending(7, "ABCD-EFGH-JKMN-PQRS"), nil)

	s := service.New(backend, nil, nil, nil)

	req, err := s.Reconcile(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, entity.RequisitionStatusPending, req.Status)

	_, err = s.Reconcile(context.Background(), 0)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_Issue(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	s := service.New(backend, nil, nil, nil)

	in := entity.IssueRequest{
		VehicleID:  3,
		StationID:  5,
		FuelTypeID: 1,
		Limit:      decimal.NewNullDecimal(d("150")),
	}

	_, err := s.Issue(entity.CtxWithUser(context.Background(), attendant), in)
	require.ErrorIs(t, err, entity.ErrForbidden)

	ctx := entity.CtxWithUser(context.Background(), manager)

	_, err = s.Issue(ctx, entity.IssueRequest{VehicleID: 3, StationID: 5, FuelTypeID: 1})
	require.ErrorIs(t, err, entity.ErrValidation)

	req, err := s.Issue(ctx, in)
	require.NoError(t, err)
	require.True(t, voucher.ValidCode(req.Code), req.Code)

	located, err := s.Locate(ctx, req.Code)
	require.NoError(t, err)
	require.Equal(t, req.ID, located.ID)
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	backend.EXPECT().Me(gomock.Any()).DoAndReturn(func(ctx context.Context) (entity.User, error) {
		require.Equal(t, "user-token", entity.JWTFromCtx(ctx))
		return attendant, nil
	})

	s := service.New(backend, nil, nil, nil)

	user, err := s.Authenticate(context.Background(), "user-token")
	require.NoError(t, err)
	require.Equal(t, attendant, user)

	_, err = s.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_QRAndScan(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(pending(1, "ABCD-EFGH-JKMN-PQRS"))
	s := service.New(backend, nil, nil, nil)

	png, err := s.QR("abcd-efgh-jkmn-pqrs")
	require.NoError(t, err)

	req, err := s.Scan(context.Background(), bytesReader(png))
	require.NoError(t, err)
	require.Equal(t, int64(1), req.ID)

	_, err = s.QR("")
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.Scan(context.Background(), bytesReader([]byte("garbage")))
	require.ErrorIs(t, err, entity.ErrValidation)
}
