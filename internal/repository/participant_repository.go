package repository

import (
	"errors"

	"gorm.io/gorm"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/storage"
)

type ParticipantRepository interface {
	Create(participant *models.Participant) error
	Find(roomID, userID uint) (*models.Participant, error)
	CountByRoomID(roomID uint) (int64, error)
}

type participantRepository struct {
	db *storage.PostgresDB
}

func NewParticipantRepository(db *storage.PostgresDB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *models.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) Find(roomID, userID uint) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.Where("room_id = ? AND user_id = ?", roomID, userID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) CountByRoomID(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Participant{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}
