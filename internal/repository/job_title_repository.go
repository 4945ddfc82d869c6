package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

type JobTitleRepository interface {
	GetAll() ([]model.JobTitle, error)
	GetByID(id uint) (*model.JobTitle, error)
	GetOrCreateByName(name string) (*model.JobTitle, error)
	Create(jobTitle *model.JobTitle) error
	Update(jobTitle *model.JobTitle) error
	Delete(id uint) error
}

type jobTitleRepository struct {
	db *gorm.DB
}

func NewJobTitleRepository(db *gorm.DB) JobTitleRepository {
	return &jobTitleRepository{db}
}

func (r *jobTitleRepository) GetAll() ([]model.JobTitle, error) {
	var titles []model.JobTitle
	err := r.db.Order("name asc").Find(&titles).Error
	return titles, err
}

func (r *jobTitleRepository) GetByID(id uint) (*model.JobTitle, error) {
	var title model.JobTitle
	err := r.db.First(&title, id).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *jobTitleRepository) GetOrCreateByName(name string) (*model.JobTitle, error) {
	var title model.JobTitle
	err := r.db.Where(model.JobTitle{Name: name}).FirstOrCreate(&title).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *jobTitleRepository) Create(jobTitle *model.JobTitle) error {
	return r.db.Create(jobTitle).Error
}

func (r *jobTitleRepository) Update(jobTitle *model.JobTitle) error {
	return r.db.Save(jobTitle).Error
}

func (r *jobTitleRepository) Delete(id uint) error {
	return r.db.Delete(&model.JobTitle{}, id).Error
}
