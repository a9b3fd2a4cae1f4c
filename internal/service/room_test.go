package service

import (
	"testing"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/utils"
)

func TestCreateRoomEnrollsOwner(t *testing.T) {
	s, _ := newTestServices(t)

	room := createTestRoom(t, s, 1)

	if len(room.Code) != utils.RoomCodeLength {
		t.Fatalf("unexpected code %q", room.Code)
	}
	if room.Status != "waiting" {
		t.Fatalf("new room status = %q, want waiting", room.Status)
	}

	// 房主建立房間時應自動成為參與者
	if _, err := s.Room.GetRoom(room.ID, 1); err != nil {
		t.Fatalf("owner GetRoom: %v", err)
	}

	rooms, err := s.Room.ListRooms(1)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != room.ID {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestGetRoomRequiresParticipant(t *testing.T) {
	s, _ := newTestServices(t)

	room := createTestRoom(t, s, 1)

	_, err := s.Room.GetRoom(room.ID, 2)
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Fatalf("GetRoom by outsider = %v, want PermissionDenied", err)
	}

	if _, err := s.Room.JoinRoom(room.Code, 2); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if _, err := s.Room.GetRoom(room.ID, 2); err != nil {
		t.Fatalf("GetRoom after join: %v", err)
	}
}

func TestJoinRoomIsIdempotent(t *testing.T) {
	s, repos := newTestServices(t)

	room := createTestRoom(t, s, 1)

	for i := 0; i < 3; i++ {
		if _, err := s.Room.JoinRoom(room.Code, 2); err != nil {
			t.Fatalf("JoinRoom #%d: %v", i+1, err)
		}
	}

	count, err := repos.Participant.CountByRoomID(room.ID)
	if err != nil {
		t.Fatalf("CountByRoomID: %v", err)
	}
	if count != 2 { // 房主 + 用戶 2
		t.Fatalf("participant count = %d, want 2", count)
	}
}

func TestJoinRoomUnknownCode(t *testing.T) {
	s, _ := newTestServices(t)

	_, err := s.Room.JoinRoom("ZZZZZZ", 1)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("JoinRoom unknown code = %v, want NotFound", err)
	}
}

func TestJoinRoomCapacity(t *testing.T) {
	s, _ := newTestServices(t)

	max := 2
	room, err := s.Room.CreateRoom("人數上限測試", "", &max, true, 1)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	if _, err := s.Room.JoinRoom(room.Code, 2); err != nil {
		t.Fatalf("JoinRoom user 2: %v", err)
	}

	_, err = s.Room.JoinRoom(room.Code, 3)
	if apperrors.KindOf(err) != apperrors.KindCapacityExceeded {
		t.Fatalf("JoinRoom over capacity = %v, want CapacityExceeded", err)
	}

	// 已是成員的用戶重複加入不受人數限制影響
	if _, err := s.Room.JoinRoom(room.Code, 2); err != nil {
		t.Fatalf("rejoin existing member: %v", err)
	}
}

func TestDeleteRoomCascades(t *testing.T) {
	s, repos := newTestServices(t)

	room := createTestRoom(t, s, 1)
	optA := addTestOption(t, s, room.ID, 1, "火鍋")
	addTestOption(t, s, room.ID, 1, "燒肉")
	openTestVoting(t, s, room.ID, 1)
	castTestVote(t, s, room.ID, optA.ID, 2)

	// 非房主不能刪除
	err := s.Room.DeleteRoom(room.ID, 2)
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Fatalf("DeleteRoom by non-owner = %v, want PermissionDenied", err)
	}

	if err := s.Room.DeleteRoom(room.ID, 1); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}

	if _, err := s.Room.GetRoom(room.ID, 1); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("GetRoom after delete = %v, want NotFound", err)
	}

	optionCount, err := repos.Option.CountByRoomID(room.ID)
	if err != nil {
		t.Fatalf("option CountByRoomID: %v", err)
	}
	participantCount, err := repos.Participant.CountByRoomID(room.ID)
	if err != nil {
		t.Fatalf("participant CountByRoomID: %v", err)
	}
	voteCount, err := repos.Vote.CountByRoomID(room.ID)
	if err != nil {
		t.Fatalf("vote CountByRoomID: %v", err)
	}
	if optionCount != 0 || participantCount != 0 || voteCount != 0 {
		t.Fatalf("leftovers after delete: options=%d participants=%d votes=%d",
			optionCount, participantCount, voteCount)
	}
}

func TestAddOptionPermissions(t *testing.T) {
	s, _ := newTestServices(t)

	// 不允許參與者新增選項的房間
	room, err := s.Room.CreateRoom("房主限定", "", nil, false, 1)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := s.Room.JoinRoom(room.Code, 2); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	_, err = s.Option.AddOption(room.ID, "參與者的選項", 2)
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Fatalf("AddOption by participant = %v, want PermissionDenied", err)
	}

	if _, err := s.Option.AddOption(room.ID, "房主的選項", 1); err != nil {
		t.Fatalf("AddOption by owner: %v", err)
	}

	// 完全沒加入房間的用戶不能新增選項
	_, err = s.Option.AddOption(room.ID, "外人的選項", 3)
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Fatalf("AddOption by outsider = %v, want PermissionDenied", err)
	}
}

func TestListOptionsKeepsCreationOrder(t *testing.T) {
	s, _ := newTestServices(t)

	room := createTestRoom(t, s, 1)
	first := addTestOption(t, s, room.ID, 1, "第一個")
	second := addTestOption(t, s, room.ID, 1, "第二個")

	options, err := s.Option.ListOptions(room.ID, 1)
	if err != nil {
		t.Fatalf("ListOptions: %v", err)
	}
	if len(options) != 2 || options[0].ID != first.ID || options[1].ID != second.ID {
		t.Fatalf("unexpected options order: %+v", options)
	}
}
