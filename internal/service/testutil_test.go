package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"chamcong-backend/config"
	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB mở một sqlite in-memory riêng cho từng test.
// cache=shared để mọi connection trong pool của gorm nhìn cùng một DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestDevice tạo một thiết bị trong DB kèm máy mô phỏng tại đúng địa chỉ
func newTestDevice(t *testing.T, db *gorm.DB, serial string) (*model.Device, *device.Simulator, *device.SimFleet) {
	t.Helper()
	dev := model.Device{
		DeviceNumber: "MCC-" + serial,
		DeviceName:   "Máy test " + serial,
		IPAddress:    "10.0.0.1",
		Port:         4370,
	}
	if err := db.Create(&dev).Error; err != nil {
		t.Fatalf("tạo thiết bị: %v", err)
	}

	sim := device.NewSimulator(serial)
	fleet := device.NewSimFleet()
	fleet.Register(dev.IPAddress, dev.Port, sim)
	return &dev, sim, fleet
}

func punchAt(t *testing.T, userID, ts string) device.Punch {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	return device.Punch{UserID: userID, Timestamp: parsed}
}

func datePtr(t *testing.T, ts string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", ts)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	return &parsed
}
