package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	GetAll() ([]model.Device, error)
	GetByID(id uint) (*model.Device, error)
	GetByDeviceNumber(number string) (*model.Device, error)
	Create(device *model.Device) error
	Update(device *model.Device) error
	Delete(id uint) error
	UpdateStatus(id uint, status string) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

func (r *deviceRepository) GetAll() ([]model.Device, error) {
	var devices []model.Device
	err := r.db.Order("device_number asc").Find(&devices).Error
	return devices, err
}

func (r *deviceRepository) GetByID(id uint) (*model.Device, error) {
	var device model.Device
	err := r.db.First(&device, id).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetByDeviceNumber(number string) (*model.Device, error) {
	var device model.Device
	err := r.db.Where("device_number = ?", number).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) Create(device *model.Device) error {
	return r.db.Create(device).Error
}

func (r *deviceRepository) Update(device *model.Device) error {
	return r.db.Save(device).Error
}

func (r *deviceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Device{}, id).Error
}

func (r *deviceRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Device{}).Where("id = ?", id).Update("status", status).Error
}
