package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/receipt"
)

type ReceiptEntity struct {
	RequisitionID   int64     `json:"requisitionId"`
	Code            string    `json:"code"`
	VehiclePlate    string    `json:"vehiclePlate"`
	StationName     string    `json:"stationName"`
	FuelType        string    `json:"fuelType"`
	LimitText       string    `json:"limitText"`
	LitersDispensed string    `json:"litersDispensed"`
	UnitPrice       string    `json:"unitPrice"`
	TotalAmount     string    `json:"totalAmount"`
	SettledAt       time.Time `json:"settledAt"`
	SettledBy       int64     `json:"settledBy"`
}

type ReceiptsResponse struct {
	Receipts   []ReceiptEntity `json:"receipts"`
	TotalCount int             `json:"totalCount"`
}

// Receipts lists journaled settlements.
//
// @Summary List receipts
// @Description Lists journaled settlements
// @Tags receipts
// @Produce json
// @Param code query string false "Voucher code"
// @Param from query string false "Settled from (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Settled until (RFC 3339 or YYYY-MM-DD, whole day included)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (settled_at, total_amount, code)"
// @Param orderBy query string false "asc or desc"
// @Success 200 {object} ReceiptsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /receipts [get]
// @Security BearerAuth
func (h *Handler) Receipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseReceiptFilter(r.URL.Query(), h.loc)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Filtro inválido")
		return
	}

	receipts, totalCount, err := h.s.Receipts(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err, msgReceiptNotFound)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ReceiptsResponse{Receipts: receiptsToAPI(receipts), TotalCount: totalCount})
}

// ReceiptPDF renders the printable receipt of a settled requisition.
//
// @Summary Receipt PDF
// @Tags receipts
// @Produce application/pdf
// @Param id path int true "Requisition ID"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Router /receipts/{id}/pdf [get]
// @Security BearerAuth
func (h *Handler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(ctx, w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	pdf, rc, err := h.s.ReceiptPDF(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, msgReceiptNotFound)
		return
	}

	sendFile(w, r, "application/pdf", receipt.FileName(rc), pdf)
}

// ExportReceipts returns the filtered journal as a spreadsheet.
//
// @Summary Export receipts
// @Description Returns the filtered journal as an XLSX spreadsheet
// @Tags receipts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param code query string false "Voucher code"
// @Param from query string false "Settled from (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Settled until (RFC 3339 or YYYY-MM-DD, whole day included)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /receipts/export [get]
// @Security BearerAuth
func (h *Handler) ExportReceipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseReceiptFilter(r.URL.Query(), h.loc)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Filtro inválido")
		return
	}

	data, err := h.s.ExportReceipts(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err, msgReceiptNotFound)
		return
	}

	name := fmt.Sprintf("abastecimentos-%s.xlsx", time.Now().In(h.loc).Format("20060102"))
	sendFile(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", name, data)
}

func sendFile(w http.ResponseWriter, r *http.Request, contentType, name string, data []byte) {
	ctx := r.Context()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	_, err := w.Write(data)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgInternal)
	}
}

// parseReceiptFilter reads the list query. Dates are either RFC 3339 or plain days in the station's time zone;
// a plain "to" day includes the whole day.
func parseReceiptFilter(q url.Values, loc *time.Location) (entity.ReceiptFilter, error) {
	const (
		defaultLimit uint64 = 20
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	limit, err := strconv.ParseUint(q.Get("limit"), 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(q.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	sortBy := entity.ReceiptSortCol(q.Get("sortBy"))
	if !sortBy.IsValid() {
		sortBy = entity.SortBySettledAt
	}

	orderBy := entity.OrderByCol(q.Get("orderBy"))
	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.ReceiptFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if code := entity.NormalizeCode(q.Get("code")); code != "" {
		filter.Code = &code
	}

	if from := q.Get("from"); from != "" {
		t, _, err := parseDay(from, loc)
		if err != nil {
			return entity.ReceiptFilter{}, fmt.Errorf("parse from: %w", err)
		}

		filter.SettledFrom = &t
	}

	if to := q.Get("to"); to != "" {
		t, dayOnly, err := parseDay(to, loc)
		if err != nil {
			return entity.ReceiptFilter{}, fmt.Errorf("parse to: %w", err)
		}

		if dayOnly {
			t = t.AddDate(0, 0, 1)
		}

		filter.SettledTo = &t
	}

	return filter, nil
}

func parseDay(s string, loc *time.Location) (time.Time, bool, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, false, nil
	}

	t, err = time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, false, err
	}

	return t, true, nil
}

func receiptsToAPI(receipts []entity.Receipt) []ReceiptEntity {
	res := make([]ReceiptEntity, 0, len(receipts))
	for _, rc := range receipts {
		res = append(res, ReceiptEntity{
			RequisitionID:   rc.RequisitionID,
			Code:            rc.Code,
			VehiclePlate:    rc.VehiclePlate,
			StationName:     rc.StationName,
			FuelType:        rc.FuelType,
			LimitText:       rc.LimitText,
			LitersDispensed: rc.LitersDispensed.StringFixed(3),
			UnitPrice:       rc.UnitPrice.StringFixed(2),
			TotalAmount:     rc.TotalAmount.StringFixed(2),
			SettledAt:       rc.SettledAt,
			SettledBy:       rc.SettledBy,
		})
	}

	return res
}
