package documents

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

const (
	SheetBookings = "Bookings"
	SheetPayments = "Payments"

	reportTimeLayout = time.RFC3339
)

var (
	bookingColumns = []string{
		"ID", "Customer", "Phone", "Bike Number", "Email", "Service", "Date", "Time Slot",
		"Location", "Mechanic", "Payment Type", "Status", "Parts Used", "Created At", "Updated At",
	}
	paymentColumns = []string{
		"ID", "Booking ID", "Customer", "Bike Number", "Service", "Parts Used",
		"Status", "Method", "Created At", "Paid At",
	}
)

// reportWriter последовательно пишет строки в листы книги
type reportWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

func renderReport(bookings []*domain.Booking, payments []*domain.Payment, generatedAt time.Time) ([]byte, error) {
	w := &reportWriter{file: excelize.NewFile()}
	defer w.file.Close()

	if err := w.addSheet(SheetBookings, bookingColumns); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := w.writeRow([]interface{}{
			b.ID, b.FullName, b.Phone, b.BikeNumber, b.Email, b.Service, b.Date, b.TimeSlot,
			b.Location, b.Mechanic, string(b.PaymentType), string(b.Status), b.PartsUsed,
			b.CreatedAt.Format(reportTimeLayout), formatOptional(b.UpdatedAt),
		}); err != nil {
			return nil, err
		}
	}

	if err := w.addSheet(SheetPayments, paymentColumns); err != nil {
		return nil, err
	}
	for _, p := range payments {
		if err := w.writeRow([]interface{}{
			p.ID, p.BookingID, p.CustomerName, p.BikeNumber, p.Service, p.PartsUsed,
			string(p.Status), string(p.Method), p.CreatedAt.Format(reportTimeLayout), formatOptional(p.PaidAt),
		}); err != nil {
			return nil, err
		}
	}

	if err := w.file.SetDocProps(&excelize.DocProperties{
		Title:   "Bike service report",
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *reportWriter) addSheet(name string, columns []string) error {
	if w.sheet == "" {
		// в новой книге уже есть Sheet1
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	w.sheet = name
	w.row = 1

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := w.writeRow(header); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		end, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = w.file.SetCellStyle(name, "A1", end, style)
	}
	return nil
}

func (w *reportWriter) writeRow(values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", w.row, w.sheet, err)
	}
	w.row++
	return nil
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(reportTimeLayout)
}
