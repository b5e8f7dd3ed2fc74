package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

// @title Voucher Gateway API
// @version 1.0
// @description Fuel station gateway: locates, previews and settles fuel requisition vouchers.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const maxScanSize = 5 << 20

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	Locate(ctx context.Context, code string) (entity.Requisition, error)
	Estimate(ctx context.Context, req entity.Requisition) entity.Estimation
	Scan(ctx context.Context, img io.Reader) (entity.Requisition, error)
	Settle(ctx context.Context, id int64, liters, amount decimal.Decimal) (entity.Settlement, error)
	Reconcile(ctx context.Context, id int64) (entity.Requisition, error)
	Issue(ctx context.Context, r entity.IssueRequest) (entity.Requisition, error)
	QR(code string) ([]byte, error)
	Receipts(ctx context.Context, f entity.ReceiptFilter) ([]entity.Receipt, int, error)
	ReceiptPDF(ctx context.Context, requisitionID int64) ([]byte, entity.Receipt, error)
	ExportReceipts(ctx context.Context, f entity.ReceiptFilter) ([]byte, error)
}

type Handler struct {
	s   Service
	loc *time.Location
}

func NewHandler(s Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{s: s, loc: loc}
}

type RequisitionEntity struct {
	ID              int64      `json:"id"`
	Code            string     `json:"code"`
	ScanValue       string     `json:"scanValue"`
	Status          string     `json:"status"`
	VehicleID       int64      `json:"vehicleId"`
	VehiclePlate    string     `json:"vehiclePlate"`
	StationID       int64      `json:"stationId"`
	StationName     string     `json:"stationName"`
	FuelTypeID      int64      `json:"fuelTypeId"`
	FuelType        string     `json:"fuelType"`
	CostCenterID    int64      `json:"costCenterId,omitempty"`
	CostCenter      string     `json:"costCenter,omitempty"`
	IssuedAt        time.Time  `json:"issuedAt"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	Limit           *string    `json:"limit"`
	LimitText       string     `json:"limitText"`
	FillTank        bool       `json:"fillTank"`
	Odometer        int64      `json:"odometer,omitempty"`
	Destination     string     `json:"destination,omitempty"`
	LitersDispensed *string    `json:"litersDispensed,omitempty"`
	TotalAmount     *string    `json:"totalAmount,omitempty"`
	SettledAt       *time.Time `json:"settledAt,omitempty"`
}

type EstimateEntity struct {
	FillTank        bool    `json:"fillTank"`
	Limit           *string `json:"limit"`
	PricePerLiter   *string `json:"pricePerLiter"`
	EstimatedLiters *string `json:"estimatedLiters"`
}

type VoucherResponse struct {
	Requisition RequisitionEntity `json:"requisition"`
	Estimate    EstimateEntity    `json:"estimate"`
}

// LocateVoucher finds a pending requisition by its typed code and previews the dispense.
//
// @Summary Locate voucher
// @Description Finds a pending requisition by its voucher code and estimates the dispense
// @Tags vouchers
// @Produce json
// @Param code path string true "Voucher code, typed or scanned"
// @Success 200 {object} VoucherResponse
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 404 {object} ErrorResponse "Code not found, already used or incorrect"
// @Failure 410 {object} ErrorResponse "Voucher expired"
// @Failure 502 {object} ErrorResponse "Backend unavailable"
// @Router /vouchers/{code} [get]
// @Security BearerAuth
func (h *Handler) LocateVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.s.Locate(ctx, chi.URLParam(r, "code"))
	if err != nil {
		SendServiceErr(ctx, w, err, msgCodeNotFound)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.voucherResponse(ctx, req))
}

// ScanVoucher decodes a QR image from the request body and locates its requisition.
//
// @Summary Scan voucher
// @Description Decodes a PNG or JPEG camera capture of the voucher QR code and locates its requisition
// @Tags vouchers
// @Accept image/png,image/jpeg
// @Produce json
// @Success 200 {object} VoucherResponse
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 404 {object} ErrorResponse "Code not found, already used or incorrect"
// @Failure 410 {object} ErrorResponse "Voucher expired"
// @Failure 422 {object} ErrorResponse "Image holds no readable code"
// @Failure 502 {object} ErrorResponse "Backend unavailable"
// @Router /vouchers/scan [post]
// @Security BearerAuth
func (h *Handler) ScanVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.s.Scan(ctx, http.MaxBytesReader(w, r.Body, maxScanSize))
	if err != nil {
		SendServiceErr(ctx, w, err, msgCodeNotFound)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.voucherResponse(ctx, req))
}

func (h *Handler) voucherResponse(ctx context.Context, req entity.Requisition) VoucherResponse {
	est := h.s.Estimate(ctx, req)

	res := VoucherResponse{
		Requisition: requisitionToAPI(req),
		Estimate: EstimateEntity{
			FillTank: est.FillTank,
			Limit:    fixed(est.Limit, 2),
		},
	}

	res.Estimate.PricePerLiter = fixed(est.PricePerLiter, 2)
	res.Estimate.EstimatedLiters = fixed(est.EstimatedLiters, 3)

	return res
}

type SettleRequest struct {
	LitersDispensed decimal.Decimal `json:"litersDispensed" swaggertype:"string" example:"16.977"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"100.00"`
}

type SettleResponse struct {
	Requisition      RequisitionEntity `json:"requisition"`
	UnitPrice        string            `json:"unitPrice"`
	UnitPriceDisplay string            `json:"unitPriceDisplay"`
	ReceiptURL       string            `json:"receiptUrl"`
}

// SettleVoucher redeems the requisition with the amounts read from the pump.
//
// @Summary Settle voucher
// @Description Consumes the voucher with the liters and amount read from the pump
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path int true "Requisition ID"
// @Param SettleRequest body SettleRequest true "Pump reading"
// @Success 200 {object} SettleResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or ID"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 404 {object} ErrorResponse "Requisition not found"
// @Failure 409 {object} ErrorResponse "Voucher already used or amount above limit"
// @Failure 422 {object} ErrorResponse "Invalid liters or amount"
// @Failure 502 {object} ErrorResponse "Backend unavailable or response unusable"
// @Router /vouchers/{id}/settle [post]
// @Security BearerAuth
func (h *Handler) SettleVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(ctx, w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req SettleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, msgInvalidJSON)
		return
	}

	st, err := h.s.Settle(ctx, id, req.LitersDispensed, req.TotalAmount)
	if err != nil {
		SendServiceErr(ctx, w, err, msgCodeNotFound)
		return
	}

	SendJSON(ctx, w, http.StatusOK, SettleResponse{
		Requisition:      requisitionToAPI(st.Requisition),
		UnitPrice:        st.UnitPrice.String(),
		UnitPriceDisplay: st.UnitPriceDisplay(),
		ReceiptURL:       fmt.Sprintf("/api/receipts/%d/pdf", st.Requisition.ID),
	})
}

// Reconcile re-reads the requisition after a settlement whose outcome is unknown.
//
// @Summary Reconcile settlement
// @Description Re-reads the requisition after a settle call whose response was lost
// @Tags vouchers
// @Produce json
// @Param id path int true "Requisition ID"
// @Success 200 {object} RequisitionEntity
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 404 {object} ErrorResponse "Requisition not found"
// @Failure 502 {object} ErrorResponse "Backend unavailable"
// @Router /vouchers/{id}/reconcile [get]
// @Security BearerAuth
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(ctx, w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, err := h.s.Reconcile(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, msgCodeNotFound)
		return
	}

	SendJSON(ctx, w, http.StatusOK, requisitionToAPI(req))
}

type IssueRequisitionRequest struct {
	VehicleID    int64               `json:"vehicleId"`
	StationID    int64               `json:"stationId"`
	FuelTypeID   int64               `json:"fuelTypeId"`
	CostCenterID int64               `json:"costCenterId"`
	Limit        decimal.NullDecimal `json:"limit" swaggertype:"string" example:"100.00"`
	FillTank     bool                `json:"fillTank"`
	Odometer     int64               `json:"odometer"`
	Destination  string              `json:"destination"`
}

type IssueRequisitionResponse struct {
	Requisition RequisitionEntity `json:"requisition"`
	QRURL       string            `json:"qrUrl"`
}

// IssueRequisition creates a requisition with a freshly generated voucher code.
//
// @Summary Issue requisition
// @Description Creates a requisition with a new voucher code
// @Tags requisitions
// @Accept json
// @Produce json
// @Param IssueRequisitionRequest body IssueRequisitionRequest true "Requisition to issue"
// @Success 201 {object} IssueRequisitionResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 403 {object} ErrorResponse "Insufficient permission"
// @Failure 404 {object} ErrorResponse "Vehicle, station or fuel type not found"
// @Failure 422 {object} ErrorResponse "Invalid requisition"
// @Router /requisitions [post]
// @Security BearerAuth
func (h *Handler) IssueRequisition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssueRequisitionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, msgInvalidJSON)
		return
	}

	created, err := h.s.Issue(ctx, entity.IssueRequest{
		VehicleID:    req.VehicleID,
		StationID:    req.StationID,
		FuelTypeID:   req.FuelTypeID,
		CostCenterID: req.CostCenterID,
		Limit:        req.Limit,
		FillTank:     req.FillTank,
		Odometer:     req.Odometer,
		Destination:  req.Destination,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Veículo, posto ou combustível não encontrado")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, IssueRequisitionResponse{
		Requisition: requisitionToAPI(created),
		QRURL:       "/api/requisitions/qr/" + created.ScanValue(),
	})
}

// QRCode renders the scan value as a PNG image.
//
// @Summary Voucher QR code
// @Tags requisitions
// @Produce image/png
// @Param code path string true "Scan value"
// @Success 200 {file} binary
// @Failure 422 {object} ErrorResponse "Invalid code"
// @Router /requisitions/qr/{code} [get]
// @Security BearerAuth
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	img, err := h.s.QR(chi.URLParam(r, "code"))
	if err != nil {
		SendServiceErr(ctx, w, err, msgCodeNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(img)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgInternal)
	}
}

// HealthHandler - returns service health status.
//
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Serviço funcionando!"
// @Failure 500 {object} ErrorResponse "Serviço indisponível!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Serviço funcionando!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Serviço indisponível!")
		return
	}
}

func parseID(ctx context.Context, w http.ResponseWriter, s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err == nil && id <= 0 {
		err = errors.New("id must be positive")
	}

	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return 0, false
	}

	return id, true
}

func requisitionToAPI(r entity.Requisition) RequisitionEntity {
	res := RequisitionEntity{
		ID:           r.ID,
		Code:         r.Code,
		ScanValue:    r.ScanValue(),
		Status:       r.Status.String(),
		VehicleID:    r.VehicleID,
		VehiclePlate: r.VehiclePlate,
		StationID:    r.StationID,
		StationName:  r.StationName,
		FuelTypeID:   r.FuelTypeID,
		FuelType:     r.FuelTypeName,
		CostCenterID: r.CostCenterID,
		CostCenter:   r.CostCenterName,
		IssuedAt:     r.IssuedAt,
		Limit:        fixed(r.Limit, 2),
		LimitText:    r.LimitDescription(),
		FillTank:     r.FillTank,
		Odometer:     r.Odometer,
		Destination:  r.Destination,
	}

	if !r.ExpiresAt.IsZero() {
		res.ExpiresAt = &r.ExpiresAt
	}

	if r.IsSettled() {
		liters := r.LitersDispensed.StringFixed(3)
		total := r.TotalAmount.StringFixed(2)
		res.LitersDispensed = &liters
		res.TotalAmount = &total

		if !r.SettledAt.IsZero() {
			res.SettledAt = &r.SettledAt
		}
	}

	return res
}

func fixed(d decimal.NullDecimal, places int32) *string {
	if !d.Valid {
		return nil
	}

	s := d.Decimal.StringFixed(places)

	return &s
}
