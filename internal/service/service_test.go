package service

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
	"dicey_decisions/internal/storage"
)

// newTestServices 在臨時目錄建立一個 SQLite 資料庫來跑服務層測試
func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	db := &storage.PostgresDB{DB: gormDB}
	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Option{}, &models.Participant{}, &models.Vote{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	repos := repository.NewRepositories(db)
	return NewServices(repos), repos
}

func createTestRoom(t *testing.T, s *Services, ownerID uint) *Room {
	t.Helper()

	room, err := s.Room.CreateRoom("聚餐吃什麼", "週五晚上", nil, true, ownerID)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	return room
}

func addTestOption(t *testing.T, s *Services, roomID, userID uint, text string) *models.Option {
	t.Helper()

	option, err := s.Option.AddOption(roomID, text, userID)
	if err != nil {
		t.Fatalf("AddOption(%q): %v", text, err)
	}
	return option
}

func openTestVoting(t *testing.T, s *Services, roomID, ownerID uint) {
	t.Helper()

	if err := s.Decision.OpenVoting(roomID, ownerID); err != nil {
		t.Fatalf("OpenVoting: %v", err)
	}
}

func castTestVote(t *testing.T, s *Services, roomID, optionID, userID uint) {
	t.Helper()

	if _, err := s.Decision.CastVote(roomID, optionID, userID); err != nil {
		t.Fatalf("CastVote(option %d, user %d): %v", optionID, userID, err)
	}
}
