package model

import "gorm.io/gorm"

// Device là một máy chấm công vật lý kết nối qua TCP.
// Status chỉ được cập nhật bởi thao tác "Kiểm tra kết nối", các luồng
// tải lên / tải về không đụng vào.
type Device struct {
	gorm.Model
	DeviceNumber string `json:"device_number" gorm:"unique;not null"` // Số máy (nhãn người dùng đặt)
	DeviceName   string `json:"device_name" gorm:"not null"`
	IPAddress    string `json:"ip_address" gorm:"not null"`
	Password     string `json:"password"` // Mật mã admin của máy, có thể trống
	Port         int    `json:"port" gorm:"default:4370"`
	Status       string `json:"status" gorm:"default:Chưa kết nối"`
	Note         string `json:"note"`
}
