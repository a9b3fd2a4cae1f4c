package service

import (
	"errors"
	"sort"
	"time"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
)

// TallyEntry 是計票結果中的一列
type TallyEntry struct {
	OptionID  uint `json:"optionId"`
	VoteCount int  `json:"voteCount"`
}

// DecisionService 負責房間生命週期的推進：開始投票、收票、計票與定案
type DecisionService struct {
	roomRepo        repository.RoomRepository
	optionRepo      repository.OptionRepository
	voteRepo        repository.VoteRepository
	participantRepo repository.ParticipantRepository
}

func NewDecisionService(roomRepo repository.RoomRepository, optionRepo repository.OptionRepository, voteRepo repository.VoteRepository, participantRepo repository.ParticipantRepository) *DecisionService {
	return &DecisionService{
		roomRepo:        roomRepo,
		optionRepo:      optionRepo,
		voteRepo:        voteRepo,
		participantRepo: participantRepo,
	}
}

// OpenVoting 由房主將房間從等待狀態推進到投票狀態，至少需要兩個選項
func (s *DecisionService) OpenVoting(roomID, userID uint) error {
	room, err := s.findRoom(roomID)
	if err != nil {
		return err
	}

	if room.OwnerID != userID {
		return apperrors.PermissionDenied("只有房主可以開始投票")
	}

	if room.Status != models.RoomStatusWaiting {
		return apperrors.InvalidState("房間不在等待狀態，無法開始投票")
	}

	count, err := s.optionRepo.CountByRoomID(roomID)
	if err != nil {
		return err
	}
	if count < 2 {
		return apperrors.InvalidState("至少需要兩個選項才能開始投票")
	}

	room.Status = models.RoomStatusVoting
	return s.roomRepo.Update(room)
}

// CloseVoting 由房主結束投票，房間進入結果狀態等待定案
func (s *DecisionService) CloseVoting(roomID, userID uint) error {
	room, err := s.findRoom(roomID)
	if err != nil {
		return err
	}

	if room.OwnerID != userID {
		return apperrors.PermissionDenied("只有房主可以結束投票")
	}

	if room.Status != models.RoomStatusVoting {
		return apperrors.InvalidState("房間不在投票狀態，無法結束投票")
	}

	room.Status = models.RoomStatusResults
	return s.roomRepo.Update(room)
}

// CastVote 投下或改投一票
// 投票者若還不是房間成員會自動加入，加入失敗（例如人數已滿）則整個投票中止
func (s *DecisionService) CastVote(roomID, optionID, userID uint) (*models.Vote, error) {
	room, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}

	if room.Status == models.RoomStatusCompleted {
		return nil, apperrors.InvalidState("房間已完成，投票已截止")
	}
	if room.Status != models.RoomStatusVoting {
		return nil, apperrors.InvalidState("房間目前不在投票階段")
	}

	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("選項不存在")
		}
		return nil, err
	}
	if option.RoomID != roomID {
		return nil, apperrors.Validation("選項不屬於這個房間")
	}

	if _, err := enroll(s.participantRepo, room, userID); err != nil {
		return nil, err
	}

	vote := &models.Vote{
		RoomID:    roomID,
		UserID:    userID,
		OptionID:  optionID,
		CreatedAt: time.Now(),
	}
	if err := s.voteRepo.Replace(vote); err != nil {
		return nil, err
	}
	return vote, nil
}

// GetTally 重新統計房間內每個選項的得票數
// 沒有得票的選項也會出現（票數為 0），依票數由高到低排序，
// 同票數時依選項建立順序排序，方便前端穩定顯示
func (s *DecisionService) GetTally(roomID uint) ([]TallyEntry, error) {
	if _, err := s.findRoom(roomID); err != nil {
		return nil, err
	}
	return s.tallyRoom(roomID)
}

// CompleteDecision 定案：計票、偵測平手、必要時執行決勝，寫入最終贏家
// 房間已完成時直接回傳既有結果，不會重新抽選
func (s *DecisionService) CompleteDecision(roomID, userID uint, tiebreaker models.TiebreakerMethod) (*Room, error) {
	room, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}

	if room.OwnerID != userID {
		return nil, apperrors.PermissionDenied("只有房主可以完成決策")
	}

	if room.IsCompleted {
		return convertModelToRoom(room), nil
	}

	if room.Status != models.RoomStatusVoting && room.Status != models.RoomStatusResults {
		return nil, apperrors.InvalidState("投票尚未開始，無法完成決策")
	}

	voteTotal, err := s.voteRepo.CountByRoomID(roomID)
	if err != nil {
		return nil, err
	}
	if voteTotal == 0 {
		return nil, apperrors.InvalidState("還沒有任何投票，無法完成決策")
	}

	// 計票前先把房間移出投票狀態
	// 同時進來的投票會被 CastVote 的狀態檢查拒絕，而不是默默被排除在結果之外
	if room.Status == models.RoomStatusVoting {
		room.Status = models.RoomStatusResults
		if err := s.roomRepo.Update(room); err != nil {
			return nil, err
		}
	}

	tally, err := s.tallyRoom(roomID)
	if err != nil {
		return nil, err
	}

	tied := tiedOptions(tally)

	var winningOptionID uint
	var tiebreakerUsed *string

	if len(tied) == 1 {
		winningOptionID = tied[0]
	} else {
		method := tiebreaker
		if method == "" {
			method = models.TiebreakerRandom
		}
		winner, err := pickTiedWinner(method, tied)
		if err != nil {
			return nil, err
		}
		winningOptionID = winner
		used := string(method)
		tiebreakerUsed = &used
	}

	// 條件式更新保證只有一個請求能定案
	// 搶輸的請求在下面重新讀取時會拿到已寫入的結果，不會重新抽出另一個贏家
	if _, err := s.roomRepo.Complete(roomID, winningOptionID, tiebreakerUsed); err != nil {
		return nil, err
	}

	completed, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}
	return convertModelToRoom(completed), nil
}

// tallyRoom 以目前的票數即時計票，不做快取
func (s *DecisionService) tallyRoom(roomID uint) ([]TallyEntry, error) {
	options, err := s.optionRepo.FindByRoomID(roomID)
	if err != nil {
		return nil, err
	}

	counts, err := s.voteRepo.CountByOption(roomID)
	if err != nil {
		return nil, err
	}

	countByOption := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByOption[c.OptionID] = c.Count
	}

	tally := make([]TallyEntry, 0, len(options))
	for _, option := range options {
		tally = append(tally, TallyEntry{
			OptionID:  option.ID,
			VoteCount: countByOption[option.ID],
		})
	}

	// 票數高的在前，同票數時維持選項建立順序
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].VoteCount > tally[j].VoteCount
	})
	return tally, nil
}

// tiedOptions 找出得票數等於最高票的所有選項
func tiedOptions(tally []TallyEntry) []uint {
	maxVotes := 0
	var tied []uint
	for _, entry := range tally {
		if entry.VoteCount > maxVotes {
			maxVotes = entry.VoteCount
			tied = []uint{entry.OptionID}
		} else if entry.VoteCount == maxVotes {
			tied = append(tied, entry.OptionID)
		}
	}
	return tied
}

func (s *DecisionService) findRoom(roomID uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("房間不存在")
		}
		return nil, err
	}
	return room, nil
}
