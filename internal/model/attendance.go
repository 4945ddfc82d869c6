package model

import (
	"time"

	"gorm.io/gorm"
)

// AttendanceRaw là một lần quẹt thô tải về từ máy chấm công.
// UserID là mã trên máy (chuỗi), không phải khóa nhân viên trong DB.
// DeviceSN là serial của máy — máy đổi IP vẫn giữ serial, nên khóa chống
// trùng là (user_id, timestamp, device_sn): tải lại cùng khoảng ngày
// không được sinh dòng mới.
type AttendanceRaw struct {
	gorm.Model
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_punch_dedup"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;uniqueIndex:idx_punch_dedup"`
	Status    int       `json:"status"` // Mã check-in/out máy trả về, chỉ để tham khảo
	Punch     int       `json:"punch"`  // Cách xác thực: 0=vân tay 1=mật khẩu 2=thẻ 3=khuôn mặt
	UID       int       `json:"uid"`
	DeviceSN  string    `json:"device_sn" gorm:"uniqueIndex:idx_punch_dedup"`
	DeviceID  uint      `json:"device_id"`
	Note      string    `json:"note"`
}

// ShiftUpload ghi nhận một nhân viên đã được tải lên một máy chấm công.
// Unique (employee_id, device_id): tải lại thì cập nhật, không nhân đôi.
type ShiftUpload struct {
	gorm.Model
	EmployeeID     uint      `json:"employee_id" gorm:"not null;uniqueIndex:idx_emp_device"`
	DeviceID       uint      `json:"device_id" gorm:"not null;uniqueIndex:idx_emp_device"`
	UserID         string    `json:"user_id" gorm:"not null"` // Mã dùng trên máy
	AttendanceCode string    `json:"attendance_code"`
	AttendanceName string    `json:"attendance_name"`
	CardNumber     string    `json:"card_number"`
	Password       string    `json:"password"`
	Privilege      int       `json:"privilege" gorm:"default:0"` // 0=User 1=Enroller 2=Manager 6=Admin
	Enabled        bool      `json:"enabled" gorm:"default:true"`
	UploadedAt     time.Time `json:"uploaded_at"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Device   *Device   `json:"device,omitempty" gorm:"foreignKey:DeviceID"`
}
