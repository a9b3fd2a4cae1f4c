package repository

import (
	"errors"

	"gorm.io/gorm"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/storage"
)

// VoteCount 是計票查詢的一列結果
type VoteCount struct {
	OptionID uint
	Count    int
}

type VoteRepository interface {
	Replace(vote *models.Vote) error
	Find(roomID, userID uint) (*models.Vote, error)
	CountByOption(roomID uint) ([]VoteCount, error)
	CountByRoomID(roomID uint) (int64, error)
}

type voteRepository struct {
	db *storage.PostgresDB
}

func NewVoteRepository(db *storage.PostgresDB) VoteRepository {
	return &voteRepository{db: db}
}

// Replace 在同一個交易中先刪除該用戶在房間內的舊票再寫入新票
// 保證同一個 (房間, 用戶) 任何時刻最多只有一票
func (r *voteRepository) Replace(vote *models.Vote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ? AND user_id = ?", vote.RoomID, vote.UserID).
			Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Create(vote).Error
	})
}

func (r *voteRepository) Find(roomID, userID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("room_id = ? AND user_id = ?", roomID, userID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vote, nil
}

// CountByOption 依選項分組計票，沒有得票的選項不會出現在結果中
func (r *voteRepository) CountByOption(roomID uint) ([]VoteCount, error) {
	var counts []VoteCount
	err := r.db.Model(&models.Vote{}).
		Select("option_id, COUNT(*) AS count").
		Where("room_id = ?", roomID).
		Group("option_id").
		Scan(&counts).Error
	return counts, err
}

func (r *voteRepository) CountByRoomID(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}
