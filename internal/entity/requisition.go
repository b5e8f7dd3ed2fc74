package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type RequisitionStatus string

const (
	RequisitionStatusPending   RequisitionStatus = "PENDING"
	RequisitionStatusValidated RequisitionStatus = "VALIDATED"
	RequisitionStatusExpired   RequisitionStatus = "EXPIRED"
	RequisitionStatusCancelled RequisitionStatus = "CANCELLED"
)

func (s RequisitionStatus) String() string {
	return string(s)
}

// ParseRequisitionStatus maps the backend voucher status onto RequisitionStatus.
// The backend speaks Portuguese and is not consistent about case, so both spellings are accepted.
func ParseRequisitionStatus(s string) (RequisitionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendente", "pending":
		return RequisitionStatusPending, nil
	case "validado", "validated", "consumido", "consumed", "concluido", "concluído", "utilizado", "used":
		return RequisitionStatusValidated, nil
	case "expirado", "expired":
		return RequisitionStatusExpired, nil
	case "cancelado", "cancelled", "canceled":
		return RequisitionStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: unknown voucher status %q", ErrBadResponse, s)
	}
}

type Requisition struct {
	ID           int64
	Code         string
	VehicleID    int64
	StationID    int64
	FuelTypeID   int64
	CostCenterID int64 // 0 when the requisition is not charged to a cost center
	IssuedAt     time.Time
	ExpiresAt    time.Time

	Limit    decimal.NullDecimal
	FillTank bool

	LitersDispensed decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	SettledAt       time.Time

	Status RequisitionStatus

	VehiclePlate   string
	StationName    string
	FuelTypeName   string
	CostCenterName string
	Destination    string
	Odometer       int64
}

// ScanValue is what gets encoded into the QR code. Older requisitions were issued without a code.
func (r Requisition) ScanValue() string {
	if r.Code != "" {
		return r.Code
	}

	return "REQ-" + strconv.FormatInt(r.ID, 10)
}

// ExpiredAt reports whether the requisition can no longer be redeemed at t.
func (r Requisition) ExpiredAt(t time.Time) bool {
	return !r.ExpiresAt.IsZero() && !t.Before(r.ExpiresAt)
}

func (r Requisition) IsSettled() bool {
	return r.Status == RequisitionStatusValidated
}

// LimitDescription is the authorized ceiling as printed on receipts.
func (r Requisition) LimitDescription() string {
	if r.FillTank || !r.Limit.Valid {
		return "Completar o tanque"
	}

	return "R$ " + r.Limit.Decimal.StringFixed(2)
}

// Settlement is the result of a successful redemption together with the amounts the attendant confirmed.
type Settlement struct {
	Requisition Requisition
	UnitPrice   decimal.Decimal
}

// UnitPriceDisplay returns the price per liter rounded for display.
func (s Settlement) UnitPriceDisplay() string {
	return s.UnitPrice.StringFixed(2)
}

// NormalizeCode prepares a typed or scanned code for lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type IssueRequest struct {
	VehicleID    int64
	StationID    int64
	FuelTypeID   int64
	CostCenterID int64
	Limit        decimal.NullDecimal
	FillTank     bool
	Odometer     int64
	Destination  string
	Code         string // filled by the issuer
}

func (r IssueRequest) Validate() error {
	if r.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicle is required", ErrValidation)
	}

	if r.StationID <= 0 {
		return fmt.Errorf("%w: station is required", ErrValidation)
	}

	if r.FuelTypeID <= 0 {
		return fmt.Errorf("%w: fuel type is required", ErrValidation)
	}

	if r.FillTank && r.Limit.Valid {
		return fmt.Errorf("%w: limit must be empty when filling the tank", ErrValidation)
	}

	if !r.FillTank && (!r.Limit.Valid || !r.Limit.Decimal.IsPositive()) {
		return fmt.Errorf("%w: positive limit or fill tank is required", ErrValidation)
	}

	if r.Odometer < 0 {
		return fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	}

	return nil
}
