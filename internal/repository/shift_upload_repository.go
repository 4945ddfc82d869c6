package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftUploadRepository interface {
	// Upsert theo (employee_id, device_id): tải lại cùng nhân viên lên cùng
	// máy thì cập nhật bản ghi cũ, không nhân đôi.
	Upsert(record *model.ShiftUpload) error
	BulkUpsert(records []model.ShiftUpload) error
	GetByDevice(deviceID uint) ([]model.ShiftUpload, error)
	GetByID(id uint) (*model.ShiftUpload, error)
	DeleteByID(id uint) error
}

type shiftUploadRepository struct {
	db *gorm.DB
}

func NewShiftUploadRepository(db *gorm.DB) ShiftUploadRepository {
	return &shiftUploadRepository{db}
}

// Đưa deleted_at vào cột cập nhật để bản ghi đã gỡ khỏi danh sách
// được khôi phục khi tải lại nhân viên đó lên máy
var shiftUploadAssignments = clause.AssignmentColumns([]string{
	"user_id", "attendance_code", "attendance_name", "card_number",
	"password", "privilege", "enabled", "uploaded_at", "updated_at", "deleted_at",
})

func (r *shiftUploadRepository) Upsert(record *model.ShiftUpload) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "device_id"}},
		DoUpdates: shiftUploadAssignments,
	}).Create(record).Error
}

func (r *shiftUploadRepository) BulkUpsert(records []model.ShiftUpload) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "device_id"}},
		DoUpdates: shiftUploadAssignments,
	}).Create(&records).Error
}

func (r *shiftUploadRepository) GetByDevice(deviceID uint) ([]model.ShiftUpload, error) {
	var records []model.ShiftUpload
	err := r.db.Preload("Employee").Where("device_id = ?", deviceID).
		Order("uploaded_at desc").Find(&records).Error
	return records, err
}

func (r *shiftUploadRepository) GetByID(id uint) (*model.ShiftUpload, error) {
	var record model.ShiftUpload
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteByID chỉ gỡ bản ghi theo dõi trong DB, không đụng tới máy chấm công
func (r *shiftUploadRepository) DeleteByID(id uint) error {
	return r.db.Delete(&model.ShiftUpload{}, id).Error
}
