// Package receipt renders fueling receipts as PDF and receipt journals as XLSX.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/voucher"
)

const (
	brand        = "NEXTFUEL360"
	title        = "Comprovante de Abastecimento"
	statusDone   = "VALIDADO E CONCLUÍDO"
	dateLayout   = "02/01/2006 15:04:05"
	labelWidth   = 60
	lineHeight   = 10
	marginX      = 20
	qrSide       = 40
	signatureGap = 40
)

// BuildPDF renders the receipt handed to the driver after a settlement.
func BuildPDF(r entity.Receipt, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(marginX, marginX, marginX)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 10, brand, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 18)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	pdf.Line(marginX, 35, pageW-marginX, 35)
	pdf.SetY(45)

	rows := [][2]string{
		{"Código do Voucher:", orDash(r.Code)},
		{"Data e Hora:", r.SettledAt.In(loc).Format(dateLayout)},
		{"Veículo:", orDash(r.VehiclePlate)},
		{"Posto:", orDash(r.StationName)},
		{"Combustível:", orDash(r.FuelType)},
		{"Limite Autorizado:", orDash(r.LimitText)},
		{"Litros Abastecidos:", r.LitersDispensed.StringFixed(3)},
		{"Preço por Litro:", "R$ " + r.UnitPrice.StringFixed(2)},
		{"Valor Total:", "R$ " + r.TotalAmount.StringFixed(2)},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(labelWidth, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, lineHeight, tr(row[1]), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(labelWidth, lineHeight, "Status:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(34, 139, 34)
	pdf.CellFormat(0, lineHeight, tr(statusDone), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if r.Code != "" {
		qr, err := voucher.EncodeForScan(r.Code)
		if err != nil {
			return nil, fmt.Errorf("render qr: %w", err)
		}

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qr))
		pdf.ImageOptions("qr", (pageW-qrSide)/2, pdf.GetY()+lineHeight, qrSide, qrSide, false, opts, 0, "")
	}

	lineY := pageH - signatureGap
	pdf.Line(marginX, lineY, pageW/2-5, lineY)
	pdf.Line(pageW/2+5, lineY, pageW-marginX, lineY)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginX, lineY+2)
	pdf.CellFormat(pageW/2-5-marginX, 6, "Assinatura do Frentista", "", 0, "C", false, 0, "")
	pdf.SetXY(pageW/2+5, lineY+2)
	pdf.CellFormat(pageW/2-5-marginX, 6, "Assinatura do Motorista", "", 0, "C", false, 0, "")

	var buf bytes.Buffer

	err := pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("output pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName is the download name used for a receipt PDF.
func FileName(r entity.Receipt) string {
	code := r.Code
	if code == "" {
		code = "voucher"
	}

	return "comprovante-" + code + ".pdf"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
