package model

import "gorm.io/gorm"

// Company lưu thông tin công ty hiển thị trên báo cáo (chỉ có 1 dòng)
type Company struct {
	gorm.Model
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IconPath string `json:"icon_path"`
}
