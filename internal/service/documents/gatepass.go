package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

const exitTimeLayout = "2006-01-02 15:04"

func renderGatePass(pass *domain.GatePass) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Gate Pass "+pass.BookingID, false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GATE PASS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Booking ID", pass.BookingID},
		{"Payment ID", pass.PaymentID},
		{"Customer", pass.CustomerName},
		{"Bike Number", pass.BikeNumber},
		{"Service", pass.Service},
		{"Payment Method", strings.ToUpper(string(pass.PaymentMethod))},
		{"Exit Time", pass.ExitTime.Format(exitTimeLayout)},
	}
	for _, r := range rows {
		pdf.Cell(0, 7, tr(fmt.Sprintf("%-15s: %s", r[0], orDash(r[1]))))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Parts used:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(orDash(pass.PartsUsed)), "", "", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this pass at the gate. Valid for a single exit.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
