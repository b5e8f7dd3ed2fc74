package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the local journal entry written after a settlement succeeded.
type Receipt struct {
	RequisitionID   int64
	Code            string
	VehiclePlate    string
	StationName     string
	FuelType        string
	LimitText       string
	LitersDispensed decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	SettledAt       time.Time
	SettledBy       int64
	CreatedAt       time.Time
}

// ReceiptFromSettlement copies the settled record as the backend returned it; now stamps the journal entry.
func ReceiptFromSettlement(s Settlement, settledBy int64, now time.Time) Receipt {
	req := s.Requisition

	return Receipt{
		RequisitionID:   req.ID,
		Code:            req.ScanValue(),
		VehiclePlate:    req.VehiclePlate,
		StationName:     req.StationName,
		FuelType:        req.FuelTypeName,
		LimitText:       req.LimitDescription(),
		LitersDispensed: req.LitersDispensed,
		UnitPrice:       s.UnitPrice,
		TotalAmount:     req.TotalAmount,
		SettledAt:       req.SettledAt,
		SettledBy:       settledBy,
		CreatedAt:       now,
	}
}

type ReceiptFilter struct {
	Code        *string
	SettledFrom *time.Time
	SettledTo   *time.Time
	Page        uint64
	Limit       uint64
	SortBy      ReceiptSortCol
	OrderBy     OrderByCol
}

type ReceiptSortCol string

func (t ReceiptSortCol) String() string {
	return string(t)
}

const (
	SortBySettledAt   ReceiptSortCol = "settled_at"
	SortByTotalAmount ReceiptSortCol = "total_amount"
	SortByCode        ReceiptSortCol = "code"
)

func (t ReceiptSortCol) IsValid() bool {
	switch t {
	case SortBySettledAt, SortByTotalAmount, SortByCode:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
