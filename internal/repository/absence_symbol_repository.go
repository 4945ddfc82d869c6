package repository

import (
	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

type AbsenceSymbolRepository interface {
	GetAll() ([]model.AbsenceSymbol, error)
	Create(symbol *model.AbsenceSymbol) error
	Update(symbol *model.AbsenceSymbol) error
	Delete(id uint) error
}

type absenceSymbolRepository struct {
	db *gorm.DB
}

func NewAbsenceSymbolRepository(db *gorm.DB) AbsenceSymbolRepository {
	return &absenceSymbolRepository{db}
}

func (r *absenceSymbolRepository) GetAll() ([]model.AbsenceSymbol, error) {
	var symbols []model.AbsenceSymbol
	err := r.db.Order("code asc").Find(&symbols).Error
	return symbols, err
}

func (r *absenceSymbolRepository) Create(symbol *model.AbsenceSymbol) error {
	return r.db.Create(symbol).Error
}

func (r *absenceSymbolRepository) Update(symbol *model.AbsenceSymbol) error {
	return r.db.Save(symbol).Error
}

func (r *absenceSymbolRepository) Delete(id uint) error {
	return r.db.Delete(&model.AbsenceSymbol{}, id).Error
}
