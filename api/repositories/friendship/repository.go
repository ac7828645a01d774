package repositories

import (
	"context"
	"errors"
	"fmt"
	"gubu/api/filters"
	"gubu/pkg/database/models"
	"gubu/pkg/messages"

	"gorm.io/gorm"
)

// ErrFriendshipExists is returned when a friendship between the two members
// already exists in either direction.
var ErrFriendshipExists = errors.New(messages.FriendshipExists)

// FriendshipRepository is the public interface for accessing the friendship
// store.
type FriendshipRepository interface {
	Accept(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, id uint) error
	GetById(ctx context.Context, id uint) (*models.Friendship, error)
	ListAcceptedFriendIds(ctx context.Context, userID uint) ([]uint, error)
	Search(ctx context.Context, filter *filters.FriendshipFilter) ([]uint, error)
}

// friendshipRepository repository structure.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a friendship repository.
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// Accept marks the friendship as accepted and reports whether it was found.
func (fr *friendshipRepository) Accept(ctx context.Context, id uint) (bool, error) {
	res := fr.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("id = ?", id).
		Update("accepted", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Create inserts a friendship, enforcing pair uniqueness regardless of
// direction inside one transaction.
func (fr *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	return fr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Friendship{}).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				friendship.SenderID, friendship.ReceiverID,
				friendship.ReceiverID, friendship.SenderID).
			Limit(1).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrFriendshipExists
		}
		return tx.Create(friendship).Error
	})
}

// Delete removes the friendship. Deleting an absent one is not an error.
func (fr *friendshipRepository) Delete(ctx context.Context, id uint) error {
	return fr.db.WithContext(ctx).Delete(&models.Friendship{}, id).Error
}

// GetById returns the friendship or nil when absent.
func (fr *friendshipRepository) GetById(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := fr.db.WithContext(ctx).First(&friendship, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

// ListAcceptedFriendIds returns the ids of the users the given user has an
// accepted friendship with, on either side.
func (fr *friendshipRepository) ListAcceptedFriendIds(ctx context.Context, userID uint) ([]uint, error) {
	var friendships []models.Friendship
	err := fr.db.WithContext(ctx).
		Where("accepted = ? AND (sender_id = ? OR receiver_id = ?)", true, userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	friendIds := make([]uint, 0, len(friendships))
	for _, friendship := range friendships {
		if friendship.SenderID == userID {
			friendIds = append(friendIds, friendship.ReceiverID)
		} else {
			friendIds = append(friendIds, friendship.SenderID)
		}
	}
	return friendIds, nil
}

// Search returns the ids of friendships matching the filter. A sender or
// receiver takes precedence over the member filter; one member matches
// either side, two members match the exact pair in either direction.
func (fr *friendshipRepository) Search(ctx context.Context, filter *filters.FriendshipFilter) ([]uint, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	query := fr.db.WithContext(ctx).Model(&models.Friendship{})

	if filter.Accepted != nil {
		query = query.Where("accepted = ?", *filter.Accepted)
	}

	switch {
	case filter.Sender != nil:
		query = query.Where("sender_id = ?", *filter.Sender)
		if filter.Receiver != nil {
			query = query.Where("receiver_id = ?", *filter.Receiver).Limit(1)
		}
	case filter.Receiver != nil:
		query = query.Where("receiver_id = ?", *filter.Receiver)
	case len(filter.Members) == 1:
		query = query.Where("sender_id = ? OR receiver_id = ?",
			filter.Members[0], filter.Members[0])
	case len(filter.Members) == 2:
		query = query.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			filter.Members[0], filter.Members[1],
			filter.Members[1], filter.Members[0]).Limit(1)
	}

	var ids []uint
	err := query.Order("id asc").Pluck("id", &ids).Error
	return ids, err
}
