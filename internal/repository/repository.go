package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

// Repository is the local journal of settled vouchers. Requisitions themselves live in the backend.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// SaveReceipt stores the receipt once per requisition. Saving the same requisition again is a no-op.
func (r *Repository) SaveReceipt(ctx context.Context, rc entity.Receipt) error {
	const q = `
	INSERT INTO receipts (
		requisition_id,
		code,
		vehicle_plate,
		station_name,
		fuel_type,
		limit_text,
		liters_dispensed,
		unit_price,
		total_amount,
		settled_at,
		settled_by,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (requisition_id) DO NOTHING
	`

	_, err := r.db.Exec(
		ctx,
		q,
		rc.RequisitionID,
		rc.Code,
		rc.VehiclePlate,
		rc.StationName,
		rc.FuelType,
		rc.LimitText,
		rc.LitersDispensed,
		rc.UnitPrice,
		rc.TotalAmount,
		rc.SettledAt,
		rc.SettledBy,
		rc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}

	return nil
}

func (r *Repository) Receipt(ctx context.Context, requisitionID int64) (entity.Receipt, error) {
	q := selectReceipt + " WHERE requisition_id = $1"
	return scanReceipt(r.db.QueryRow(ctx, q, requisitionID))
}

// Receipts returns one page of receipts and the total number of receipts matching the filter.
func (r *Repository) Receipts(ctx context.Context, f entity.ReceiptFilter) ([]entity.Receipt, int, error) {
	stmt := sq.Select(receiptColumns, "COUNT(*) OVER() AS total_count").
		From("receipts").
		PlaceholderFormat(sq.Dollar)

	stmt = applyReceiptFilter(stmt, f).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy), "requisition_id DESC")

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Page*f.Limit - f.Limit)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	receipts := make([]entity.Receipt, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var rc entity.Receipt

		err = rows.Scan(append(receiptDest(&rc), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scan receipt: %w", err)
		}

		receipts = append(receipts, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate receipts: %w", err)
	}

	return receipts, totalCount, nil
}

func applyReceiptFilter(stmt sq.SelectBuilder, f entity.ReceiptFilter) sq.SelectBuilder {
	if f.Code != nil {
		stmt = stmt.Where(sq.ILike{"code": "%" + *f.Code + "%"})
	}

	if f.SettledFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"settled_at": *f.SettledFrom})
	}

	if f.SettledTo != nil {
		stmt = stmt.Where(sq.Lt{"settled_at": *f.SettledTo})
	}

	return stmt
}

func receiptDest(rc *entity.Receipt) []any {
	return []any{
		&rc.RequisitionID,
		&rc.Code,
		&rc.VehiclePlate,
		&rc.StationName,
		&rc.FuelType,
		&rc.LimitText,
		&rc.LitersDispensed,
		&rc.UnitPrice,
		&rc.TotalAmount,
		&rc.SettledAt,
		&rc.SettledBy,
		&rc.CreatedAt,
	}
}

func scanReceipt(row pgx.Row) (rc entity.Receipt, err error) {
	err = row.Scan(receiptDest(&rc)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Receipt{}, entity.ErrNotFound
		}

		return entity.Receipt{}, err
	}

	return rc, nil
}
