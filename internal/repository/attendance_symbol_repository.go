package repository

import (
	"errors"

	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

// Bộ ký hiệu chấm công là 1 dòng duy nhất
type AttendanceSymbolRepository interface {
	Get() (*model.AttendanceSymbol, error)
	Update(symbol *model.AttendanceSymbol) error
}

type attendanceSymbolRepository struct {
	db *gorm.DB
}

func NewAttendanceSymbolRepository(db *gorm.DB) AttendanceSymbolRepository {
	return &attendanceSymbolRepository{db}
}

func (r *attendanceSymbolRepository) Get() (*model.AttendanceSymbol, error) {
	var symbol model.AttendanceSymbol
	err := r.db.First(&symbol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		symbol = model.AttendanceSymbol{
			LateSymbol:            "Tr",
			EarlyLeaveSymbol:      "Sm",
			OnTimeSymbol:          "X",
			OvertimeSymbol:        "+",
			MissingCheckoutSymbol: "KR",
			MissingCheckinSymbol:  "KV",
			AbsentSymbol:          "V",
			OnTimeOvernightSymbol: "D",
			NoScheduleSymbol:      "Off",
			ShowLate:              true,
			ShowEarlyLeave:        true,
			ShowOnTime:            true,
			ShowOvertime:          true,
		}
		if err := r.db.Create(&symbol).Error; err != nil {
			return nil, err
		}
		return &symbol, nil
	}
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}

func (r *attendanceSymbolRepository) Update(symbol *model.AttendanceSymbol) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	symbol.ID = existing.ID
	return r.db.Save(symbol).Error
}
