package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

const sheetReceipts = "Abastecimentos"

var xlsxHeader = []string{
	"Requisição", "Código", "Data", "Veículo", "Posto", "Combustível",
	"Limite", "Litros", "Preço/Litro", "Valor Total",
}

// BuildXLSX renders the receipt journal for the reports page, one row per receipt and a totals row.
func BuildXLSX(receipts []entity.Receipt, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", sheetReceipts)
	if err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	err = f.SetSheetRow(sheetReceipts, "A1", &xlsxHeader)
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range receipts {
		liters, _ := r.LitersDispensed.Float64()
		unitPrice, _ := entity.RoundCurrency(r.UnitPrice).Float64()
		total, _ := r.TotalAmount.Float64()

		row := []any{
			r.RequisitionID,
			r.Code,
			r.SettledAt.In(loc).Format(dateLayout),
			r.VehiclePlate,
			r.StationName,
			r.FuelType,
			r.LimitText,
			liters,
			unitPrice,
			total,
		}

		err = f.SetSheetRow(sheetReceipts, fmt.Sprintf("A%d", i+2), &row)
		if err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if len(receipts) > 0 {
		last := len(receipts) + 1
		totalRow := last + 1

		_ = f.SetCellValue(sheetReceipts, fmt.Sprintf("A%d", totalRow), "Total")
		_ = f.SetCellFormula(sheetReceipts, fmt.Sprintf("H%d", totalRow), fmt.Sprintf("SUM(H2:H%d)", last))
		_ = f.SetCellFormula(sheetReceipts, fmt.Sprintf("J%d", totalRow), fmt.Sprintf("SUM(J2:J%d)", last))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
