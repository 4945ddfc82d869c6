package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	GetAll() ([]model.Department, error)
	GetByID(id uint) (*model.Department, error)
	GetOrCreateByName(name string) (*model.Department, error)
	Create(department *model.Department) error
	Update(department *model.Department) error
	Delete(id uint) error
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) GetAll() ([]model.Department, error) {
	var departments []model.Department
	err := r.db.Order("name asc").Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) GetByID(id uint) (*model.Department, error) {
	var department model.Department
	err := r.db.First(&department, id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetOrCreateByName dùng cho import file: phòng ban chưa có thì tạo mới
func (r *departmentRepository) GetOrCreateByName(name string) (*model.Department, error) {
	var department model.Department
	err := r.db.Where(model.Department{Name: name}).FirstOrCreate(&department).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Create(department *model.Department) error {
	return r.db.Create(department).Error
}

func (r *departmentRepository) Update(department *model.Department) error {
	return r.db.Save(department).Error
}

func (r *departmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Department{}, id).Error
}
