package service

import (
	"errors"
	"time"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
)

// isParticipant 回報用戶是否已是房間成員
func isParticipant(participantRepo repository.ParticipantRepository, roomID, userID uint) (bool, error) {
	_, err := participantRepo.Find(roomID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// requireParticipant 檢查用戶是房間成員或房主，否則拒絕操作
func requireParticipant(participantRepo repository.ParticipantRepository, room *models.Room, userID uint) error {
	if room.OwnerID == userID {
		return nil
	}
	ok, err := isParticipant(participantRepo, room.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.PermissionDenied("你不是這個房間的參與者")
	}
	return nil
}

// enroll 將用戶加入房間，已是成員時直接回傳現有的成員資料
// 人數檢查是先計數再寫入，兩個請求同時加入時可能超出上限一名，
// 上限在這裡是軟性限制
func enroll(participantRepo repository.ParticipantRepository, room *models.Room, userID uint) (*models.Participant, error) {
	existing, err := participantRepo.Find(room.ID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if room.MaxParticipants != nil {
		count, err := participantRepo.CountByRoomID(room.ID)
		if err != nil {
			return nil, err
		}
		if count >= int64(*room.MaxParticipants) {
			return nil, apperrors.CapacityExceeded("房間人數已滿")
		}
	}

	participant := &models.Participant{
		RoomID:   room.ID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	if err := participantRepo.Create(participant); err != nil {
		return nil, err
	}
	return participant, nil
}
