package service

import (
	"errors"
	"strings"
	"time"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
	"dicey_decisions/internal/utils"
)

// 產生邀請碼時的重試上限，6 碼的空間撞到這麼多次代表出了別的問題
const roomCodeMaxAttempts = 10

// Room 代表一個決策房間
type Room struct {
	ID                            uint      `json:"id"`
	Title                         string    `json:"title"`
	Description                   string    `json:"description"`
	Code                          string    `json:"code"`
	OwnerID                       uint      `json:"ownerId"`
	MaxParticipants               *int      `json:"maxParticipants"`
	AllowParticipantsToAddOptions bool      `json:"allowParticipantsToAddOptions"`
	Status                        string    `json:"status"`
	IsCompleted                   bool      `json:"isCompleted"`
	WinningOptionID               *uint     `json:"winningOptionId"`
	TiebreakerUsed                *string   `json:"tiebreakerUsed"`
	CreatedAt                     time.Time `json:"createdAt"`
}

type RoomService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
}

func NewRoomService(roomRepo repository.RoomRepository, participantRepo repository.ParticipantRepository) *RoomService {
	return &RoomService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
	}
}

// CreateRoom 建立新房間並把房主加入為參與者
func (s *RoomService) CreateRoom(title, description string, maxParticipants *int, allowParticipantsToAddOptions bool, ownerID uint) (*Room, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Validation("房間標題不能為空")
	}
	if maxParticipants != nil && *maxParticipants < 1 {
		return nil, apperrors.Validation("人數上限必須至少為 1")
	}

	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	roomModel := &models.Room{
		Title:                         title,
		Description:                   description,
		Code:                          code,
		OwnerID:                       ownerID,
		MaxParticipants:               maxParticipants,
		AllowParticipantsToAddOptions: allowParticipantsToAddOptions,
		Status:                        models.RoomStatusWaiting,
	}

	if err := s.roomRepo.Create(roomModel); err != nil {
		return nil, err
	}

	if _, err := enroll(s.participantRepo, roomModel, ownerID); err != nil {
		return nil, err
	}

	return convertModelToRoom(roomModel), nil
}

// JoinRoom 以邀請碼加入房間，重複加入是無害的
// 已完成的房間仍然可以加入，讓新成員也能查看結果
func (s *RoomService) JoinRoom(code string, userID uint) (*Room, error) {
	roomModel, err := s.roomRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("房間不存在")
		}
		return nil, err
	}

	if _, err := enroll(s.participantRepo, roomModel, userID); err != nil {
		return nil, err
	}

	return convertModelToRoom(roomModel), nil
}

// GetRoom 取得房間資訊，僅限房主或參與者
func (s *RoomService) GetRoom(roomID, userID uint) (*Room, error) {
	roomModel, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}

	if err := requireParticipant(s.participantRepo, roomModel, userID); err != nil {
		return nil, err
	}

	return convertModelToRoom(roomModel), nil
}

// GetRoomByCode 以邀請碼查詢房間，用於加入前的預覽
func (s *RoomService) GetRoomByCode(code string) (*Room, error) {
	roomModel, err := s.roomRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("房間不存在")
		}
		return nil, err
	}
	return convertModelToRoom(roomModel), nil
}

// ListRooms 列出用戶參與的所有房間
func (s *RoomService) ListRooms(userID uint) ([]Room, error) {
	roomModels, err := s.roomRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	rooms := make([]Room, 0, len(roomModels))
	for i := range roomModels {
		rooms = append(rooms, *convertModelToRoom(&roomModels[i]))
	}
	return rooms, nil
}

// DeleteRoom 刪除房間與其所有選項、成員和投票，僅限房主
func (s *RoomService) DeleteRoom(roomID, userID uint) error {
	roomModel, err := s.findRoom(roomID)
	if err != nil {
		return err
	}

	if roomModel.OwnerID != userID {
		return apperrors.PermissionDenied("只有房主可以刪除房間")
	}

	return s.roomRepo.Delete(roomID)
}

func (s *RoomService) findRoom(roomID uint) (*models.Room, error) {
	roomModel, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("房間不存在")
		}
		return nil, err
	}
	return roomModel, nil
}

func (s *RoomService) generateUniqueCode() (string, error) {
	for i := 0; i < roomCodeMaxAttempts; i++ {
		code := utils.GenerateRoomCode()
		_, err := s.roomRepo.FindByCode(code)
		if errors.Is(err, repository.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("無法產生不重複的房間邀請碼")
}

func convertModelToRoom(model *models.Room) *Room {
	return &Room{
		ID:                            model.ID,
		Title:                         model.Title,
		Description:                   model.Description,
		Code:                          model.Code,
		OwnerID:                       model.OwnerID,
		MaxParticipants:               model.MaxParticipants,
		AllowParticipantsToAddOptions: model.AllowParticipantsToAddOptions,
		Status:                        string(model.Status),
		IsCompleted:                   model.IsCompleted,
		WinningOptionID:               model.WinningOptionID,
		TiebreakerUsed:                model.TiebreakerUsed,
		CreatedAt:                     model.CreatedAt,
	}
}
