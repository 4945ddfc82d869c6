package model

import "gorm.io/gorm"

// User là tài khoản đăng nhập phần mềm (admin), không phải nhân viên chấm công
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
}
