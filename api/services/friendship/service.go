package friendshipservice

import (
	"context"
	"errors"
	"gubu/api/dto"
	"gubu/api/filters"
	"gubu/pkg/database/models"
	"gubu/pkg/messages"

	friendshiprepo "gubu/api/repositories/friendship"

	"gorm.io/gorm"
)

// ErrSelfFriendship is returned when sender and receiver are the same user.
var ErrSelfFriendship = errors.New(messages.SelfFriendship)

// FriendshipService owns friend requests between users.
type FriendshipService struct {
	db *gorm.DB

	FriendshipRepository friendshiprepo.FriendshipRepository
}

// FriendshipServiceDeps is the dependency list for the friendship service.
type FriendshipServiceDeps struct {
	DB *gorm.DB
}

// NewFriendshipService creates a friendship service.
func NewFriendshipService(deps *FriendshipServiceDeps) *FriendshipService {
	return &FriendshipService{
		db:                   deps.DB,
		FriendshipRepository: friendshiprepo.NewFriendshipRepository(deps.DB),
	}
}

// List returns the ids of friendships matching the filter.
func (fs *FriendshipService) List(ctx context.Context, filter *filters.FriendshipFilter) ([]uint, error) {
	return fs.FriendshipRepository.Search(ctx, filter)
}

// Get returns the friendship view, or nil when absent.
func (fs *FriendshipService) Get(ctx context.Context, id uint) (*dto.Friendship, error) {
	friendship, err := fs.FriendshipRepository.GetById(ctx, id)
	if err != nil || friendship == nil {
		return nil, err
	}
	return &dto.Friendship{
		ID:       friendship.ID,
		Sender:   friendship.SenderID,
		Receiver: friendship.ReceiverID,
		Accepted: friendship.Accepted,
	}, nil
}

// Create inserts a pending friendship and returns its id. The sender may
// not befriend themselves and each pair may only have one friendship.
func (fs *FriendshipService) Create(ctx context.Context, sender, receiver uint) (uint, error) {
	if sender == receiver {
		return 0, ErrSelfFriendship
	}

	friendship := &models.Friendship{SenderID: sender, ReceiverID: receiver}
	if err := fs.FriendshipRepository.Create(ctx, friendship); err != nil {
		return 0, err
	}
	return friendship.ID, nil
}

// Accept marks the friendship as accepted, reporting whether it exists.
func (fs *FriendshipService) Accept(ctx context.Context, id uint) (bool, error) {
	return fs.FriendshipRepository.Accept(ctx, id)
}

// Delete removes the friendship.
func (fs *FriendshipService) Delete(ctx context.Context, id uint) error {
	return fs.FriendshipRepository.Delete(ctx, id)
}
