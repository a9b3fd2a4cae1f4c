package service

import (
	"errors"
	"strings"
	"time"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
)

type OptionService struct {
	roomRepo        repository.RoomRepository
	optionRepo      repository.OptionRepository
	participantRepo repository.ParticipantRepository
}

func NewOptionService(roomRepo repository.RoomRepository, optionRepo repository.OptionRepository, participantRepo repository.ParticipantRepository) *OptionService {
	return &OptionService{
		roomRepo:        roomRepo,
		optionRepo:      optionRepo,
		participantRepo: participantRepo,
	}
}

// AddOption 在房間內新增一個候選選項
// 房間完成後不能再新增；房間設定不允許參與者新增時僅限房主
func (s *OptionService) AddOption(roomID uint, text string, userID uint) (*models.Option, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("選項內容不能為空")
	}

	room, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}

	if room.IsCompleted {
		return nil, apperrors.InvalidState("房間已完成，不能再新增選項")
	}

	if err := requireParticipant(s.participantRepo, room, userID); err != nil {
		return nil, err
	}

	if !room.AllowParticipantsToAddOptions && room.OwnerID != userID {
		return nil, apperrors.PermissionDenied("只有房主可以新增選項")
	}

	option := &models.Option{
		RoomID:      roomID,
		Text:        text,
		CreatedByID: userID,
		CreatedAt:   time.Now(),
	}
	if err := s.optionRepo.Create(option); err != nil {
		return nil, err
	}
	return option, nil
}

// ListOptions 列出房間內的所有選項，僅限房主或參與者
func (s *OptionService) ListOptions(roomID, userID uint) ([]models.Option, error) {
	room, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}

	if err := requireParticipant(s.participantRepo, room, userID); err != nil {
		return nil, err
	}

	return s.optionRepo.FindByRoomID(roomID)
}

func (s *OptionService) findRoom(roomID uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("房間不存在")
		}
		return nil, err
	}
	return room, nil
}
