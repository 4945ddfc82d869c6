package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll() ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	GetByCode(code string) (*model.Employee, error)
	Create(employee *model.Employee) error
	CreateMany(employees []model.Employee) error
	Update(employee *model.Employee) error
	Delete(id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Preload("Department").Preload("JobTitle").
		Order("employee_code asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Preload("Department").Preload("JobTitle").First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByCode(code string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("employee_code = ?", code).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) CreateMany(employees []model.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.Create(&employees).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, id).Error
}
