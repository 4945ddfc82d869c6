package repository

import (
	"errors"

	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

// Cấu hình cuối tuần là 1 dòng duy nhất, mặc định nghỉ thứ 7 + chủ nhật
type WeekendRepository interface {
	Get() (*model.Weekend, error)
	Update(weekend *model.Weekend) error
}

type weekendRepository struct {
	db *gorm.DB
}

func NewWeekendRepository(db *gorm.DB) WeekendRepository {
	return &weekendRepository{db}
}

func (r *weekendRepository) Get() (*model.Weekend, error) {
	var weekend model.Weekend
	err := r.db.First(&weekend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		weekend = model.Weekend{Saturday: true, Sunday: true}
		if err := r.db.Create(&weekend).Error; err != nil {
			return nil, err
		}
		return &weekend, nil
	}
	if err != nil {
		return nil, err
	}
	return &weekend, nil
}

func (r *weekendRepository) Update(weekend *model.Weekend) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	weekend.ID = existing.ID
	return r.db.Save(weekend).Error
}
