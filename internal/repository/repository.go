package repository

import (
	"errors"

	"dicey_decisions/internal/storage"
)

// ErrNotFound 表示查詢的資料不存在，由服務層轉換成對應的錯誤分類
var ErrNotFound = errors.New("not found")

type Repositories struct {
	User        UserRepository
	Room        RoomRepository
	Option      OptionRepository
	Participant ParticipantRepository
	Vote        VoteRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Room:        NewRoomRepository(db),
		Option:      NewOptionRepository(db),
		Participant: NewParticipantRepository(db),
		Vote:        NewVoteRepository(db),
	}
}
