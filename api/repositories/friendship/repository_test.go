package repositories

import (
	"context"
	"testing"

	"gubu/api/filters"
	repotestutil "gubu/api/repositories/testutil"
	"gubu/pkg/database/models"
	"gubu/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewFriendshipRepository(t *testing.T) {
	repository := NewFriendshipRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

// seedFriendshipTestData creates the users and friendships the search tests
// run against.
func seedFriendshipTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, username := range []string{"alice", "bob", "carol", "dave"} {
		require.NoError(t, db.Create(&models.User{Username: username, DisplayName: username}).Error)
	}

	friendships := []models.Friendship{
		{SenderID: 1, ReceiverID: 2, Accepted: true},
		{SenderID: 1, ReceiverID: 3},
		{SenderID: 4, ReceiverID: 1, Accepted: true},
		{SenderID: 2, ReceiverID: 3},
	}
	for i := range friendships {
		require.NoError(t, db.Create(&friendships[i]).Error)
	}
}

func TestFriendshipSearch(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewFriendshipRepository(db)
	seedFriendshipTestData(t, db)

	accepted := true
	sender1 := uint(1)
	receiver3 := uint(3)

	tests := []struct {
		name          string
		filter        *filters.FriendshipFilter
		expectedIds   []uint
		expectedError string
	}{
		{
			name:          "nil filter",
			filter:        nil,
			expectedError: messages.FiltersNotNil,
		},
		{
			name:        "no filter lists everything",
			filter:      &filters.FriendshipFilter{},
			expectedIds: []uint{1, 2, 3, 4},
		},
		{
			name:        "by sender",
			filter:      &filters.FriendshipFilter{Sender: &sender1},
			expectedIds: []uint{1, 2},
		},
		{
			name:        "by sender and receiver",
			filter:      &filters.FriendshipFilter{Sender: &sender1, Receiver: &receiver3},
			expectedIds: []uint{2},
		},
		{
			name:        "by receiver",
			filter:      &filters.FriendshipFilter{Receiver: &receiver3},
			expectedIds: []uint{2, 4},
		},
		{
			name:        "single member matches either side",
			filter:      &filters.FriendshipFilter{Members: []uint{1}},
			expectedIds: []uint{1, 2, 3},
		},
		{
			name:        "member pair matches either direction",
			filter:      &filters.FriendshipFilter{Members: []uint{1, 4}},
			expectedIds: []uint{3},
		},
		{
			name:        "accepted filter composes",
			filter:      &filters.FriendshipFilter{Members: []uint{1}, Accepted: &accepted},
			expectedIds: []uint{1, 3},
		},
		{
			name:        "sender takes precedence over members",
			filter:      &filters.FriendshipFilter{Sender: &sender1, Members: []uint{2, 3}},
			expectedIds: []uint{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := repository.Search(context.Background(), tt.filter)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedIds, ids)
		})
	}
}

func TestFriendshipCreatePairUniqueness(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewFriendshipRepository(db)
	ctx := context.Background()

	for _, username := range []string{"alice", "bob"} {
		require.NoError(t, db.Create(&models.User{Username: username, DisplayName: username}).Error)
	}

	require.NoError(t, repository.Create(ctx, &models.Friendship{SenderID: 1, ReceiverID: 2}))

	// Same pair again, same and reversed direction.
	err := repository.Create(ctx, &models.Friendship{SenderID: 1, ReceiverID: 2})
	assert.ErrorIs(t, err, ErrFriendshipExists)
	err = repository.Create(ctx, &models.Friendship{SenderID: 2, ReceiverID: 1})
	assert.ErrorIs(t, err, ErrFriendshipExists)
}

func TestFriendshipAcceptAndFriendIds(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewFriendshipRepository(db)
	seedFriendshipTestData(t, db)
	ctx := context.Background()

	// Pending friendship 2 becomes accepted.
	found, err := repository.Accept(ctx, 2)
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = repository.Accept(ctx, 99)
	assert.NoError(t, err)
	assert.False(t, found)

	// User 1 now has accepted friendships with 2, 4 and 3, on both sides.
	friendIds, err := repository.ListAcceptedFriendIds(ctx, 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint{2, 3, 4}, friendIds)
}
