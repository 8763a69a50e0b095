package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const guestSheet = "Convidados"

// ExportGuests writes a guest list to an xlsx workbook and returns the
// bytes with a suggested filename
func (s *promoterService) ExportGuests(ctx context.Context, listID uint) ([]byte, string, error) {
	guests, err := s.ListGuests(ctx, listID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close guest workbook")
		}
	}()

	index, err := f.NewSheet(guestSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Nome", "WhatsApp", "Check-in"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(guestSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(guestSheet, "A1", "D1", headerStyle)
	}

	for i, g := range guests {
		row := i + 2
		checkedIn := "Não"
		if g.CheckedIn {
			checkedIn = "Sim"
		}
		f.SetCellValue(guestSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(guestSheet, fmt.Sprintf("B%d", row), g.Name)
		// text keeps leading zeros and long numbers intact
		f.SetCellStr(guestSheet, fmt.Sprintf("C%d", row), g.WhatsApp)
		f.SetCellValue(guestSheet, fmt.Sprintf("D%d", row), checkedIn)
	}

	widths := []float64{6, 32, 18, 10}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(guestSheet, col, col, w)
	}

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("convidados_%d_%s.xlsx", listID, time.Now().Format("20060102_150405"))
	s.logger.WithFields(map[string]interface{}{
		"guest_list_id": listID,
		"guests":        len(guests),
	}).Info("Guest list exported")
	return buf.Bytes(), filename, nil
}
