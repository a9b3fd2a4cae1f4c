package repository

import (
	"errors"

	"gorm.io/gorm"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/storage"
)

type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	FindByCode(code string) (*models.Room, error)
	FindByUserID(userID uint) ([]models.Room, error)
	Update(room *models.Room) error
	Complete(roomID, winningOptionID uint, tiebreakerUsed *string) (bool, error)
	Delete(roomID uint) error
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByCode(code string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("code = ?", code).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindByUserID 查詢用戶參與的所有房間，依建立時間由新到舊排序
func (r *roomRepository) FindByUserID(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.
		Joins("JOIN participants ON participants.room_id = rooms.id").
		Where("participants.user_id = ?", userID).
		Order("rooms.created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

// Complete 以單一條件式 UPDATE 寫入決策結果
// 只有房間尚未完成時才會生效，回傳值表示這次呼叫是否成功搶到定案權
func (r *roomRepository) Complete(roomID, winningOptionID uint, tiebreakerUsed *string) (bool, error) {
	result := r.db.Model(&models.Room{}).
		Where("id = ? AND is_completed = ?", roomID, false).
		Updates(map[string]interface{}{
			"status":            models.RoomStatusCompleted,
			"is_completed":      true,
			"winning_option_id": winningOptionID,
			"tiebreaker_used":   tiebreakerUsed,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete 在同一個交易中刪除房間與其所有選項、成員和投票
func (r *roomRepository) Delete(roomID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, roomID).Error
	})
}
