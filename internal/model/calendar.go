package model

import "gorm.io/gorm"

type Holiday struct {
	gorm.Model
	HolidayDate string `json:"holiday_date" gorm:"not null"` // YYYY-MM-DD
	Name        string `json:"name" gorm:"not null"`
}

// Weekend là cấu hình ngày nghỉ cuối tuần (1 dòng duy nhất)
type Weekend struct {
	gorm.Model
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday" gorm:"default:true"`
	Sunday    bool `json:"sunday" gorm:"default:true"`
}

// AttendanceSymbol là bộ ký hiệu in trên bảng công (1 dòng duy nhất)
type AttendanceSymbol struct {
	gorm.Model
	LateSymbol            string `json:"late_symbol" gorm:"default:Tr"`
	EarlyLeaveSymbol      string `json:"early_leave_symbol" gorm:"default:Sm"`
	OnTimeSymbol          string `json:"on_time_symbol" gorm:"default:X"`
	OvertimeSymbol        string `json:"overtime_symbol" gorm:"default:+"`
	MissingCheckoutSymbol string `json:"missing_checkout_symbol" gorm:"default:KR"`
	MissingCheckinSymbol  string `json:"missing_checkin_symbol" gorm:"default:KV"`
	AbsentSymbol          string `json:"absent_symbol" gorm:"default:V"`
	OnTimeOvernightSymbol string `json:"on_time_overnight_symbol" gorm:"default:D"`
	NoScheduleSymbol      string `json:"no_schedule_symbol" gorm:"default:Off"`
	ShowLate              bool   `json:"show_late" gorm:"default:true"`
	ShowEarlyLeave        bool   `json:"show_early_leave" gorm:"default:true"`
	ShowOnTime            bool   `json:"show_on_time" gorm:"default:true"`
	ShowOvertime          bool   `json:"show_overtime" gorm:"default:true"`
}

// AbsenceSymbol là ký hiệu một loại vắng (nghỉ phép, ốm, thai sản...)
type AbsenceSymbol struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;not null"`
	Description string `json:"description"`
	Symbol      string `json:"symbol"`
	IsUsed      bool   `json:"is_used" gorm:"default:true"`
	IsPaid      bool   `json:"is_paid" gorm:"default:false"`
}
