package config

import (
	"fmt"
	"log"

	"chamcong-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB mở kết nối database theo biến môi trường DB_DRIVER.
// Mặc định dùng sqlite (file nhúng, giống bản desktop cũ chạy DuckDB);
// triển khai server thì đặt DB_DRIVER=mysql hoặc postgres.
func ConnectDB() {
	driver := GetEnv("DB_DRIVER", "sqlite")

	var err error
	switch driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			GetEnv("DB_USER", "root"),
			GetEnv("DB_PASS", ""),
			GetEnv("DB_HOST", "127.0.0.1"),
			GetEnvAsInt("DB_PORT", 3306),
			GetEnv("DB_NAME", "chamcong"),
		)
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=Asia/Ho_Chi_Minh",
			GetEnv("DB_HOST", "127.0.0.1"),
			GetEnv("DB_USER", "postgres"),
			GetEnv("DB_PASS", ""),
			GetEnv("DB_NAME", "chamcong"),
			GetEnvAsInt("DB_PORT", 5432),
		)
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "chamcong.db")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Không kết nối được database (%s): %v", driver, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate lỗi: %v", err)
	}
}

// Migrate tạo bảng cho toàn bộ model. Tách riêng để test gọi được với DB riêng.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Department{},
		&model.JobTitle{},
		&model.Employee{},
		&model.Device{},
		&model.AttendanceRaw{},
		&model.ShiftUpload{},
		&model.Holiday{},
		&model.Weekend{},
		&model.AttendanceSymbol{},
		&model.AbsenceSymbol{},
	)
}
