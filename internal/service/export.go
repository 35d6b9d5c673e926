package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"venuebook/internal/model"
)

const bookingsSheet = "Bookings"

var bookingColumns = []string{
	"Booked At", "Status", "Customer", "Email", "Phone", "Account",
	"Event Date", "Event Time", "Event Type", "Guests", "Package",
	"Additional Services", "Estimated Total", "Message",
}

// WriteBookingsWorkbook renders bookings as an .xlsx workbook with one row per booking.
func WriteBookingsWorkbook(w io.Writer, rows []model.BookingWithOwner, pricing *Pricing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	for i, title := range bookingColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(bookingsSheet, cell, title)
	}
	last, _ := excelize.CoordinatesToCellName(len(bookingColumns), 1)
	f.SetCellStyle(bookingsSheet, "A1", last, header)

	for r, b := range rows {
		account := b.User.FullName
		if !b.User.Deleted && b.User.Email != "" {
			account = fmt.Sprintf("%s <%s>", b.User.FullName, b.User.Email)
		}
		values := []interface{}{
			b.BookingDate.Format("2006-01-02 15:04"),
			b.Status,
			b.Name,
			b.Email,
			b.Phone,
			account,
			b.EventDate.Format("2006-01-02"),
			b.EventTime,
			b.EventType,
			b.GuestCount,
			b.PackageType,
			strings.Join(b.AdditionalServices, ", "),
			pricing.Estimate(b.PackageType, b.AdditionalServices).InexactFloat64(),
			b.Message,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(bookingsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	f.SetColWidth(bookingsSheet, "A", "B", 18)
	f.SetColWidth(bookingsSheet, "C", "F", 28)
	f.SetColWidth(bookingsSheet, "G", "K", 16)
	f.SetColWidth(bookingsSheet, "L", "L", 40)
	f.SetColWidth(bookingsSheet, "M", "M", 16)
	f.SetColWidth(bookingsSheet, "N", "N", 50)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
