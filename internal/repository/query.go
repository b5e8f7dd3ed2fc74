package repository

const (
	receiptColumns = `requisition_id,
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
		created_at`

	selectReceipt = `SELECT ` + receiptColumns + ` FROM receipts`
)
