package handler

import (
	"fmt"

	"chamcong-backend/internal/service"

	"github.com/xuri/excelize/v2"
)

// buildReconciledWorkbook dựng file .xlsx bảng công, cột y như bảng trên
// màn hình: mã NV, tên, ngày, 3 cặp giờ vào/ra, cách xác thực, mã máy
func buildReconciledWorkbook(days []service.ReconciledDay) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Bang cong"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{
		"Mã NV", "Tên NV", "Ngày",
		"Giờ vào 1", "Giờ ra 1",
		"Giờ vào 2", "Giờ ra 2",
		"Giờ vào 3", "Giờ ra 3",
		"Xác thực", "Mã chấm công",
	}
	for i, head := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, head); err != nil {
			return nil, err
		}
	}

	for rowIdx, day := range days {
		row := []string{day.UserID, day.UserName, day.Date}
		for i := 0; i < 3; i++ {
			if i < len(day.Pairs) {
				row = append(row, day.Pairs[i].In, day.Pairs[i].Out)
			} else {
				row = append(row, "", "")
			}
		}
		row = append(row, day.PunchMethod, day.UID)

		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ghi workbook: %w", err)
	}
	return buf.Bytes(), nil
}
