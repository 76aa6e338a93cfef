package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hotel-reservation/models"
)

const reservationsSheet = "Reservations"

type ExportService struct {
	System *ReservationSystem
}

func NewExportService(system *ReservationSystem) *ExportService {
	return &ExportService{System: system}
}

// WriteReservations renders every reservation as one row of an xlsx sheet.
// Hotel and customer names are filled in when the referenced records still
// exist; dangling references are left blank.
func (s *ExportService) WriteReservations(w io.Writer) error {
	reservations, err := s.System.ListReservations()
	if err != nil {
		return err
	}
	hotels, err := s.System.ListHotels()
	if err != nil {
		return err
	}
	customers, err := s.System.ListCustomers()
	if err != nil {
		return err
	}

	hotelNames := make(map[string]string, len(hotels))
	for _, h := range hotels {
		hotelNames[h.HotelID] = h.Name
	}
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.CustomerID] = c.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reservationsSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	headers := []string{"Reservation ID", "Customer ID", "Customer", "Hotel ID", "Hotel", "Room", "Check-in", "Check-out", "Status"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(reservationsSheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(reservationsSheet, "A1", last, headerStyle)
	}

	for i, r := range reservations {
		row := i + 2
		values := []interface{}{
			r.ReservationID,
			r.CustomerID,
			customerNames[r.CustomerID],
			r.HotelID,
			hotelNames[r.HotelID],
			r.RoomNumber,
			r.CheckIn,
			r.CheckOut,
			string(r.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(reservationsSheet, cell, v)
		}
		if r.Status == models.StatusCancelled {
			cancelled, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#9C0006"}})
			if err == nil {
				first, _ := excelize.CoordinatesToCellName(1, row)
				last, _ := excelize.CoordinatesToCellName(len(values), row)
				f.SetCellStyle(reservationsSheet, first, last, cancelled)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
