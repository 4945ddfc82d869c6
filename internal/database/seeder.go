package database

import (
	"log"

	"chamcong-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Tài khoản quản trị đầu tiên
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Name:     "Quản trị viên",
		Username: "admin",
		Password: string(hashedPassword),
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Ghi đè mật khẩu để luôn đồng bộ với "admin123" kể cả khi đã tồn tại
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seed tài khoản admin xong!")
	}

	// 2. Thông tin đơn vị mẫu
	company := model.Company{
		Name:    "Công ty TNHH Mẫu",
		Phone:   "0123 456 789",
		Address: "Số 1 Đường Mẫu, Hà Nội",
	}
	db.FirstOrCreate(&company, model.Company{Name: company.Name})

	// 3. Phòng ban + chức vụ mặc định
	departments := []model.Department{
		{Name: "Ban Giám đốc"},
		{Name: "Phòng Hành chính - Nhân sự"},
		{Name: "Phòng Kế toán"},
		{Name: "Phòng Kỹ thuật"},
	}
	for _, d := range departments {
		db.FirstOrCreate(&d, model.Department{Name: d.Name})
	}

	jobTitles := []model.JobTitle{
		{Name: "Giám đốc"},
		{Name: "Trưởng phòng"},
		{Name: "Nhân viên"},
	}
	for _, t := range jobTitles {
		db.FirstOrCreate(&t, model.JobTitle{Name: t.Name})
	}

	// 4. Cấu hình cuối tuần (nghỉ thứ 7 + chủ nhật) và bộ ký hiệu chấm công
	weekend := model.Weekend{Saturday: true, Sunday: true}
	db.FirstOrCreate(&weekend, model.Weekend{})

	symbol := model.AttendanceSymbol{
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
	db.FirstOrCreate(&symbol, model.AttendanceSymbol{})

	// 5. Ký hiệu vắng mặt thường dùng
	absences := []model.AbsenceSymbol{
		{Code: "P", Description: "Nghỉ phép", Symbol: "P", IsUsed: true, IsPaid: true},
		{Code: "KP", Description: "Nghỉ không phép", Symbol: "KP", IsUsed: true, IsPaid: false},
		{Code: "Ô", Description: "Nghỉ ốm", Symbol: "Ô", IsUsed: true, IsPaid: true},
		{Code: "TS", Description: "Thai sản", Symbol: "TS", IsUsed: true, IsPaid: true},
	}
	for _, a := range absences {
		db.FirstOrCreate(&a, model.AbsenceSymbol{Code: a.Code})
	}

	// 6. Máy chấm công demo, trỏ vào máy mô phỏng khi DEVICE_DRIVER=sim
	device := model.Device{
		DeviceNumber: "MCC-001",
		DeviceName:   "Máy chấm công cổng chính",
		IPAddress:    "192.168.1.201",
		Port:         4370,
	}
	db.FirstOrCreate(&device, model.Device{DeviceNumber: device.DeviceNumber})

	// 7. Vài nhân viên mẫu để thử tải lên máy
	var dept model.Department
	db.Where("name = ?", "Phòng Kỹ thuật").First(&dept)
	var title model.JobTitle
	db.Where("name = ?", "Nhân viên").First(&title)

	employees := []model.Employee{
		{EmployeeCode: "NV001", Name: "Nguyễn Văn An", AttendanceCode: "1", Gender: "Nam", DepartmentID: &dept.ID, JobTitleID: &title.ID},
		{EmployeeCode: "NV002", Name: "Trần Thị Bình", AttendanceCode: "2", Gender: "Nữ", DepartmentID: &dept.ID, JobTitleID: &title.ID},
		{EmployeeCode: "NV003", Name: "Lê Văn Cường", Gender: "Nam", DepartmentID: &dept.ID, JobTitleID: &title.ID},
	}
	for _, e := range employees {
		db.FirstOrCreate(&e, model.Employee{EmployeeCode: e.EmployeeCode})
	}

	log.Println("Seed dữ liệu mẫu xong!")
}
