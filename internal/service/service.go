package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/voucher"
	"github.com/samandr77/microservices/voucher/pkg/broker"
	"github.com/samandr77/microservices/voucher/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

// Backend is the authoritative requisition store.
type Backend interface {
	FindByCode(ctx context.Context, code string) (entity.Requisition, error)
	Requisition(ctx context.Context, id int64) (entity.Requisition, error)
	Settle(ctx context.Context, id int64, liters, amount decimal.Decimal) (entity.Requisition, error)
	CreateRequisition(ctx context.Context, r entity.IssueRequest) (entity.Requisition, error)
	Me(ctx context.Context) (entity.User, error)
	PriceSource
}

type PriceSource interface {
	FuelPrices(ctx context.Context) ([]entity.FuelPrice, error)
	FuelPricesByType(ctx context.Context, fuelTypeID int64) ([]entity.FuelPrice, error)
}

type Repository interface {
	SaveReceipt(ctx context.Context, r entity.Receipt) error
	Receipt(ctx context.Context, requisitionID int64) (entity.Receipt, error)
	Receipts(ctx context.Context, f entity.ReceiptFilter) ([]entity.Receipt, int, error)
}

type Producer interface {
	SendVoucherSettled(ctx context.Context, event broker.VoucherSettledEvent)
}

type Mailer interface {
	SendReceipt(ctx context.Context, r entity.Receipt, pdf []byte) error
}

const legacyCodePrefix = "REQ-"

type Service struct {
	backend  Backend
	repo     Repository
	producer Producer
	mailer   Mailer
	prices   *PriceCache
	loc      *time.Location
}

// New builds the voucher workflow. repo, producer and mailer are optional: without them
// settlements are neither journaled, published nor e-mailed.
func New(backend Backend, repo Repository, producer Producer, mailer Mailer) *Service {
	return &Service{
		backend:  backend,
		repo:     repo,
		producer: producer,
		mailer:   mailer,
		prices:   NewPriceCache(backend),
		loc:      time.Local,
	}
}

// WithLocation sets the time zone receipts are printed in.
func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.loc = loc
	}

	return s
}

// Prices exposes the fuel price cache so its refresh can be scheduled.
func (s *Service) Prices() *PriceCache {
	return s.prices
}

// Authenticate resolves the owner of token through the backend session endpoint.
func (s *Service) Authenticate(ctx context.Context, token string) (entity.User, error) {
	if token == "" {
		return entity.User{}, entity.ErrUnauthenticated
	}

	user, err := s.backend.Me(entity.CtxWithJWT(ctx, token))
	if err != nil {
		return entity.User{}, fmt.Errorf("get session user: %w", err)
	}

	return user, nil
}

// Locate finds the pending requisition for a typed or scanned code.
func (s *Service) Locate(ctx context.Context, code string) (req entity.Requisition, err error) {
	defer func() { metrics.IncLocate(resultOf(err)) }()

	code = entity.NormalizeCode(code)
	if code == "" {
		return entity.Requisition{}, fmt.Errorf("%w: code is required", entity.ErrValidation)
	}

	req, err = s.lookup(ctx, code)
	if err != nil {
		return entity.Requisition{}, err
	}

	switch req.Status {
	case entity.RequisitionStatusValidated, entity.RequisitionStatusCancelled:
		return entity.Requisition{}, codeNotFound(ctx, "requisition is not pending",
			"requisition_id", req.ID, "status", req.Status)
	case entity.RequisitionStatusExpired:
		return entity.Requisition{}, fmt.Errorf("requisition %d: %w", req.ID, entity.ErrExpired)
	}

	if req.ExpiredAt(time.Now()) {
		return entity.Requisition{}, fmt.Errorf("requisition %d expired at %s: %w",
			req.ID, req.ExpiresAt.Format(time.RFC3339), entity.ErrExpired)
	}

	return req, nil
}

// lookup resolves both real voucher codes and the REQ-<id> value printed for requisitions issued without one.
func (s *Service) lookup(ctx context.Context, code string) (entity.Requisition, error) {
	if id, ok := legacyID(code); ok {
		req, err := s.backend.Requisition(ctx, id)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Requisition{}, codeNotFound(ctx, "backend has no requisition", "requisition_id", id, "error", err)
		}

		if err != nil {
			return entity.Requisition{}, fmt.Errorf("get requisition %d: %w", id, err)
		}

		if req.Code != "" {
			return entity.Requisition{}, codeNotFound(ctx, "requisition has a voucher code", "requisition_id", id)
		}

		return req, nil
	}

	req, err := s.backend.FindByCode(ctx, code)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.Requisition{}, codeNotFound(ctx, "backend has no voucher", "error", err)
	}

	if err != nil {
		return entity.Requisition{}, fmt.Errorf("find by code: %w", err)
	}

	if entity.NormalizeCode(req.Code) != code {
		return entity.Requisition{}, codeNotFound(ctx, "backend answered with another code", "requisition_id", req.ID)
	}

	return req, nil
}

// codeNotFound logs why a lookup failed and returns the bare ErrNotFound, so callers can't tell
// used or cancelled codes from unknown ones.
func codeNotFound(ctx context.Context, reason string, args ...any) error {
	slog.InfoContext(ctx, "voucher lookup failed: "+reason, args...)
	return entity.ErrNotFound
}

func legacyID(code string) (int64, bool) {
	rest, ok := strings.CutPrefix(code, legacyCodePrefix)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// Estimate previews liters for the requisition at the current fuel price. A price that cannot be
// resolved only drops the preview.
func (s *Service) Estimate(ctx context.Context, req entity.Requisition) entity.Estimation {
	price, ok, err := s.prices.Current(ctx, req.FuelTypeID)
	if err != nil {
		slog.WarnContext(ctx, "resolve fuel price", "fuel_type_id", req.FuelTypeID, "error", err)
	}

	if !ok {
		return entity.Estimate(req, nil)
	}

	return entity.Estimate(req, &price)
}

// Settle redeems the requisition for the dispensed liters and the amount charged.
// The backend is called at most once. If its answer is lost the requisition is read back instead.
func (s *Service) Settle(ctx context.Context, id int64, liters, amount decimal.Decimal) (st entity.Settlement, err error) {
	start := time.Now()

	defer func() { metrics.ObserveSettle(resultOf(err), time.Since(start)) }()

	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Settlement{}, err
	}

	if !user.CanSettle() {
		return entity.Settlement{}, fmt.Errorf("%w: user %s can't settle vouchers", entity.ErrForbidden, user)
	}

	if id <= 0 {
		return entity.Settlement{}, fmt.Errorf("%w: requisition id is required", entity.ErrValidation)
	}

	unitPrice, err := entity.UnitPrice(amount, liters)
	if err != nil {
		return entity.Settlement{}, err
	}

	req, err := s.backend.Settle(ctx, id, liters, amount)
	if err != nil {
		if !errors.Is(err, entity.ErrNetwork) {
			return entity.Settlement{}, fmt.Errorf("settle requisition %d: %w", id, err)
		}

		confirmed, rerr := s.confirmSettled(ctx, id, liters, amount)
		if rerr != nil {
			slog.WarnContext(ctx, "settlement outcome unknown", "requisition_id", id, "error", rerr)
			return entity.Settlement{}, fmt.Errorf("settle requisition %d: %w", id, err)
		}

		slog.InfoContext(ctx, "settlement confirmed after lost response", "requisition_id", id)

		req = confirmed
	}

	// the returned record is what gets journaled, published and printed
	err = checkSettled(req)
	if err != nil {
		slog.ErrorContext(ctx, "voucher consumed but settle response is unusable", "requisition_id", id, "error", err)
		return entity.Settlement{}, fmt.Errorf("settle requisition %d: %w: %w", id, entity.ErrBadResponse, err)
	}

	st = entity.Settlement{
		Requisition: req,
		UnitPrice:   unitPrice,
	}

	slog.InfoContext(ctx, fmt.Sprintf("Voucher %s settled: %s L, R$ %s, R$ %s/L",
		req.ScanValue(), liters, entity.RoundCurrency(amount).StringFixed(2), st.UnitPriceDisplay()),
		"requisition_id", id)

	s.afterSettle(ctx, st, user)

	return st, nil
}

// confirmSettled reads the requisition back after a lost settle response. It succeeds only when the
// backend already holds exactly this settlement.
func (s *Service) confirmSettled(ctx context.Context, id int64, liters, amount decimal.Decimal) (entity.Requisition, error) {
	req, err := s.backend.Requisition(ctx, id)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("read back requisition: %w", err)
	}

	err = checkSettled(req)
	if err != nil {
		return entity.Requisition{}, err
	}

	if !req.LitersDispensed.Equal(liters) || !req.TotalAmount.Equal(amount) {
		return entity.Requisition{}, fmt.Errorf("requisition settled with %s L, R$ %s", req.LitersDispensed, req.TotalAmount)
	}

	return req, nil
}

func checkSettled(req entity.Requisition) error {
	switch {
	case !req.IsSettled():
		return fmt.Errorf("requisition is %s", req.Status)
	case !req.LitersDispensed.IsPositive():
		return errors.New("requisition has no liters dispensed")
	case !req.TotalAmount.IsPositive():
		return errors.New("requisition has no total amount")
	case req.SettledAt.IsZero():
		return errors.New("requisition has no settlement time")
	}

	return nil
}

// Reconcile returns the requisition as the backend currently sees it. It never mutates anything.
func (s *Service) Reconcile(ctx context.Context, id int64) (entity.Requisition, error) {
	if id <= 0 {
		return entity.Requisition{}, fmt.Errorf("%w: requisition id is required", entity.ErrValidation)
	}

	req, err := s.backend.Requisition(ctx, id)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("get requisition %d: %w", id, err)
	}

	return req, nil
}

// Issue creates a requisition with a freshly generated voucher code.
func (s *Service) Issue(ctx context.Context, r entity.IssueRequest) (req entity.Requisition, err error) {
	defer func() { metrics.IncIssue(resultOf(err)) }()

	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Requisition{}, err
	}

	if !user.CanIssue() {
		return entity.Requisition{}, fmt.Errorf("%w: user %s can't issue requisitions", entity.ErrForbidden, user)
	}

	err = r.Validate()
	if err != nil {
		return entity.Requisition{}, err
	}

	r.Code, err = voucher.GenerateCode()
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("generate code: %w", err)
	}

	req, err = s.backend.CreateRequisition(ctx, r)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("create requisition: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Requisition %d issued by %s, voucher %s, limit %s",
		req.ID, user, req.ScanValue(), req.LimitDescription()))

	return req, nil
}

// QR renders the scannable PNG for a voucher code.
func (s *Service) QR(code string) ([]byte, error) {
	code = entity.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", entity.ErrValidation)
	}

	png, err := voucher.EncodeForScan(code)
	if err != nil {
		return nil, fmt.Errorf("encode code: %w", err)
	}

	return png, nil
}

// Scan decodes a captured QR image and locates its requisition.
func (s *Service) Scan(ctx context.Context, img io.Reader) (entity.Requisition, error) {
	code, err := voucher.DecodeScan(img)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("%w: %w", entity.ErrValidation, err)
	}

	return s.Locate(ctx, code)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, entity.ErrValidation):
		return "validation"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrExpired):
		return "expired"
	case errors.Is(err, entity.ErrConflict):
		return "conflict"
	case errors.Is(err, entity.ErrAuth), errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrForbidden):
		return "auth"
	case errors.Is(err, entity.ErrNetwork):
		return "network"
	default:
		return "error"
	}
}
