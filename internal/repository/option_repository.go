package repository

import (
	"errors"

	"gorm.io/gorm"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/storage"
)

type OptionRepository interface {
	Create(option *models.Option) error
	FindByID(id uint) (*models.Option, error)
	FindByRoomID(roomID uint) ([]models.Option, error)
	CountByRoomID(roomID uint) (int64, error)
}

type optionRepository struct {
	db *storage.PostgresDB
}

func NewOptionRepository(db *storage.PostgresDB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *models.Option) error {
	return r.db.Create(option).Error
}

func (r *optionRepository) FindByID(id uint) (*models.Option, error) {
	var option models.Option
	err := r.db.First(&option, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// FindByRoomID 依建立順序列出房間內的所有選項
func (r *optionRepository) FindByRoomID(roomID uint) ([]models.Option, error) {
	var options []models.Option
	err := r.db.Where("room_id = ?", roomID).Order("id ASC").Find(&options).Error
	return options, err
}

func (r *optionRepository) CountByRoomID(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Option{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}
