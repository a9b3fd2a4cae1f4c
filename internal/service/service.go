package service

import (
	"dicey_decisions/internal/repository"
)

type Services struct {
	User     *UserService
	Room     *RoomService
	Option   *OptionService
	Decision *DecisionService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User:     NewUserService(repos.User),
		Room:     NewRoomService(repos.Room, repos.Participant),
		Option:   NewOptionService(repos.Room, repos.Option, repos.Participant),
		Decision: NewDecisionService(repos.Room, repos.Option, repos.Vote, repos.Participant),
	}
}
