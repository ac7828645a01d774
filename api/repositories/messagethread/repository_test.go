package repositories

import (
	"context"
	"testing"

	repotestutil "gubu/api/repositories/testutil"
	"gubu/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewMessageThreadRepository(t *testing.T) {
	repository := NewMessageThreadRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

// seedThreadTestData creates users and three threads: {1,2}, {1,2,3} and
// {2,3}.
func seedThreadTestData(t *testing.T, db *gorm.DB, repository MessageThreadRepository) {
	t.Helper()

	for _, username := range []string{"alice", "bob", "carol"} {
		require.NoError(t, db.Create(&models.User{Username: username, DisplayName: username}).Error)
	}

	for _, members := range [][]uint{{1, 2}, {1, 2, 3}, {2, 3}} {
		_, err := repository.Create(context.Background(), members)
		require.NoError(t, err)
	}
}

func TestListByMembers(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMessageThreadRepository(db)
	seedThreadTestData(t, db, repository)
	ctx := context.Background()

	tests := []struct {
		name        string
		members     []uint
		strict      bool
		expectedIds []uint
	}{
		{
			name:        "containment",
			members:     []uint{1, 2},
			expectedIds: []uint{1, 2},
		},
		{
			name:        "strict exact set",
			members:     []uint{1, 2},
			strict:      true,
			expectedIds: []uint{1},
		},
		{
			name:        "single member containment",
			members:     []uint{3},
			expectedIds: []uint{2, 3},
		},
		{
			name:        "no matching thread",
			members:     []uint{1, 3},
			strict:      true,
			expectedIds: []uint{},
		},
		{
			name:        "empty member list",
			members:     []uint{},
			expectedIds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := repository.ListByMembers(ctx, tt.members, tt.strict)

			assert.NoError(t, err)
			if len(tt.expectedIds) == 0 {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.expectedIds, ids)
			}
		})
	}
}

func TestCreateRejectsDuplicateMemberSet(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMessageThreadRepository(db)
	seedThreadTestData(t, db, repository)
	ctx := context.Background()

	_, err := repository.Create(ctx, []uint{2, 1})
	assert.ErrorIs(t, err, ErrThreadExists)

	// A superset is a different conversation.
	id, err := repository.Create(ctx, []uint{1, 3})
	assert.NoError(t, err)
	assert.NotZero(t, id)
}

func TestAddMessageAndGetById(t *testing.T) {
	db, cleanup := repotestutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMessageThreadRepository(db)
	seedThreadTestData(t, db, repository)
	ctx := context.Background()

	found, err := repository.AddMessage(ctx, &models.MessageThreadMessage{
		MessageThreadID: 1,
		AuthorUserID:    1,
		AuthorSessionID: "session-a",
		Content:         "first",
	})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repository.AddMessage(ctx, &models.MessageThreadMessage{
		MessageThreadID: 1,
		AuthorUserID:    2,
		AuthorSessionID: "session-b",
		Content:         "second",
	})
	require.NoError(t, err)
	assert.True(t, found)

	// Missing threads are reported, not created.
	found, err = repository.AddMessage(ctx, &models.MessageThreadMessage{
		MessageThreadID: 99,
		AuthorUserID:    1,
		AuthorSessionID: "session-a",
		Content:         "void",
	})
	require.NoError(t, err)
	assert.False(t, found)

	thread, err := repository.GetById(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, thread)
	assert.Len(t, thread.Members, 2)
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "first", thread.Messages[0].Content)
	assert.Equal(t, "second", thread.Messages[1].Content)

	missing, err := repository.GetById(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
