package repository

import (
	"errors"

	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

// Bảng company chỉ có một dòng: Get trả về dòng đó (hoặc nil),
// Save tạo mới lần đầu rồi cập nhật các lần sau.
type CompanyRepository interface {
	Get() (*model.Company, error)
	Save(company *model.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db}
}

func (r *companyRepository) Get() (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Save(company *model.Company) error {
	var existing model.Company
	err := r.db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(company).Error
	}
	if err != nil {
		return err
	}
	company.ID = existing.ID
	return r.db.Save(company).Error
}
