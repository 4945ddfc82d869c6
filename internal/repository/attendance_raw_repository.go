package repository

import (
	"time"

	"chamcong-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRawRepository interface {
	// BulkInsertIgnoreDuplicates ghi nhiều lần quẹt, bỏ qua dòng đụng khóa
	// (user_id, timestamp, device_sn). Trả về số dòng thực sự được ghi.
	BulkInsertIgnoreDuplicates(records []model.AttendanceRaw) (int64, error)
	GetAll(fromDate, toDate *time.Time, deviceID *uint) ([]model.AttendanceRaw, error)
	DeleteByID(id uint) error
	DeleteByIDs(ids []uint) error
	DeleteAll() error
	Count() (int64, error)
}

type attendanceRawRepository struct {
	db *gorm.DB
}

func NewAttendanceRawRepository(db *gorm.DB) AttendanceRawRepository {
	return &attendanceRawRepository{db}
}

func (r *attendanceRawRepository) BulkInsertIgnoreDuplicates(records []model.AttendanceRaw) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	// Đụng unique constraint là chuyện bình thường khi tải lại cùng khoảng
	// ngày — DO NOTHING để lần tải là idempotent. RowsAffected chỉ đếm
	// dòng thực sự insert, không đếm dòng bị bỏ qua.
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "timestamp"}, {Name: "device_sn"}},
		DoNothing: true,
	}).Create(&records)
	return tx.RowsAffected, tx.Error
}

func (r *attendanceRawRepository) GetAll(fromDate, toDate *time.Time, deviceID *uint) ([]model.AttendanceRaw, error) {
	var records []model.AttendanceRaw
	q := r.db.Model(&model.AttendanceRaw{})
	if fromDate != nil {
		q = q.Where("DATE(timestamp) >= DATE(?)", fromDate)
	}
	if toDate != nil {
		q = q.Where("DATE(timestamp) <= DATE(?)", toDate)
	}
	if deviceID != nil {
		q = q.Where("device_id = ?", *deviceID)
	}
	err := q.Order("timestamp asc").Find(&records).Error
	return records, err
}

// Xóa cứng: dòng xóa mềm vẫn nằm trong unique index, tải lại sẽ không
// insert lại được lần quẹt đã xóa.
func (r *attendanceRawRepository) DeleteByID(id uint) error {
	return r.db.Unscoped().Delete(&model.AttendanceRaw{}, id).Error
}

func (r *attendanceRawRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Unscoped().Delete(&model.AttendanceRaw{}, ids).Error
}

func (r *attendanceRawRepository) DeleteAll() error {
	return r.db.Unscoped().Where("1 = 1").Delete(&model.AttendanceRaw{}).Error
}

func (r *attendanceRawRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRaw{}).Count(&count).Error
	return count, err
}
