package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/receipt"
	"github.com/samandr77/microservices/voucher/pkg/broker"
	"github.com/samandr77/microservices/voucher/pkg/metrics"
)

const (
	defaultReceiptLimit = 20
	maxReceiptLimit     = 100
	maxExportRows       = 10_000
)

// afterSettle journals, publishes and e-mails a settlement. The voucher is already consumed in the
// backend at this point, so failures here are logged and never reported to the caller.
func (s *Service) afterSettle(ctx context.Context, st entity.Settlement, user entity.User) {
	rc := entity.ReceiptFromSettlement(st, user.ID, time.Now())

	if s.repo != nil {
		if err := s.repo.SaveReceipt(ctx, rc); err != nil {
			slog.ErrorContext(ctx, "save receipt", "requisition_id", rc.RequisitionID, "error", err)
		}
	}

	if s.producer != nil {
		req := st.Requisition

		s.producer.SendVoucherSettled(ctx, broker.VoucherSettledEvent{
			RequisitionID:   req.ID,
			Code:            rc.Code,
			StationID:       req.StationID,
			FuelTypeID:      req.FuelTypeID,
			LitersDispensed: req.LitersDispensed,
			UnitPrice:       st.UnitPrice,
			TotalAmount:     req.TotalAmount,
			SettledAt:       rc.SettledAt,
			SettledBy:       user.ID,
		})
	}

	if s.mailer != nil {
		pdf, err := s.renderPDF(rc)
		if err != nil {
			slog.ErrorContext(ctx, "render receipt", "requisition_id", rc.RequisitionID, "error", err)
			return
		}

		if err := s.mailer.SendReceipt(ctx, rc, pdf); err != nil {
			slog.ErrorContext(ctx, "send receipt", "requisition_id", rc.RequisitionID, "error", err)
		}
	}
}

// Receipts lists journaled receipts. Page and limit default to the first 20 rows.
func (s *Service) Receipts(ctx context.Context, f entity.ReceiptFilter) ([]entity.Receipt, int, error) {
	if s.repo == nil {
		return nil, 0, fmt.Errorf("%w: receipt journal is disabled", entity.ErrNotFound)
	}

	f, err := normalizeReceiptFilter(f)
	if err != nil {
		return nil, 0, err
	}

	receipts, total, err := s.repo.Receipts(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get receipts: %w", err)
	}

	return receipts, total, nil
}

// ReceiptPDF renders the receipt of a settled requisition from the journal.
func (s *Service) ReceiptPDF(ctx context.Context, requisitionID int64) ([]byte, entity.Receipt, error) {
	if s.repo == nil {
		return nil, entity.Receipt{}, fmt.Errorf("%w: receipt journal is disabled", entity.ErrNotFound)
	}

	rc, err := s.repo.Receipt(ctx, requisitionID)
	if err != nil {
		return nil, entity.Receipt{}, fmt.Errorf("get receipt %d: %w", requisitionID, err)
	}

	pdf, err := s.renderPDF(rc)
	if err != nil {
		return nil, entity.Receipt{}, err
	}

	return pdf, rc, nil
}

// SettlementPDF renders the receipt right after a settlement, without the journal.
func (s *Service) SettlementPDF(st entity.Settlement, settledBy int64) ([]byte, entity.Receipt, error) {
	rc := entity.ReceiptFromSettlement(st, settledBy, time.Now())

	pdf, err := s.renderPDF(rc)
	if err != nil {
		return nil, entity.Receipt{}, err
	}

	return pdf, rc, nil
}

// ExportReceipts renders every receipt matching the filter as an XLSX sheet.
func (s *Service) ExportReceipts(ctx context.Context, f entity.ReceiptFilter) ([]byte, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: receipt journal is disabled", entity.ErrNotFound)
	}

	f.Page, f.Limit = 1, 1

	f, err := normalizeReceiptFilter(f)
	if err != nil {
		return nil, err
	}

	f.Limit = maxExportRows

	receipts, total, err := s.repo.Receipts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get receipts: %w", err)
	}

	if total > len(receipts) {
		slog.WarnContext(ctx, "receipt export truncated", "total", total, "exported", len(receipts))
	}

	b, err := receipt.BuildXLSX(receipts, s.loc)
	if err != nil {
		metrics.IncReceiptExport("xlsx", "error")
		return nil, fmt.Errorf("build xlsx: %w", err)
	}

	metrics.IncReceiptExport("xlsx", metrics.ResultSuccess)

	return b, nil
}

func (s *Service) renderPDF(rc entity.Receipt) ([]byte, error) {
	b, err := receipt.BuildPDF(rc, s.loc)
	if err != nil {
		metrics.IncReceiptExport("pdf", "error")
		return nil, fmt.Errorf("build pdf: %w", err)
	}

	metrics.IncReceiptExport("pdf", metrics.ResultSuccess)

	return b, nil
}

func normalizeReceiptFilter(f entity.ReceiptFilter) (entity.ReceiptFilter, error) {
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit == 0 {
		f.Limit = defaultReceiptLimit
	}

	if f.Limit > maxReceiptLimit {
		return f, fmt.Errorf("%w: limit must not exceed %d", entity.ErrValidation, maxReceiptLimit)
	}

	if f.SortBy == "" {
		f.SortBy = entity.SortBySettledAt
	}

	if !f.SortBy.IsValid() {
		return f, fmt.Errorf("%w: unknown sort column %q", entity.ErrValidation, f.SortBy)
	}

	if f.OrderBy == "" {
		f.OrderBy = entity.DESC
	}

	if !f.OrderBy.IsValid() {
		return f, fmt.Errorf("%w: unknown order %q", entity.ErrValidation, f.OrderBy)
	}

	if f.SettledFrom != nil && f.SettledTo != nil && !f.SettledFrom.Before(*f.SettledTo) {
		return f, fmt.Errorf("%w: settled_from must be before settled_to", entity.ErrValidation)
	}

	return f, nil
}
