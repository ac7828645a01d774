package userservice

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"gubu/api/dto"
	"gubu/api/filters"
	"gubu/pkg/database/models"

	friendshiprepo "gubu/api/repositories/friendship"
	playerrepo "gubu/api/repositories/player"
	userrepo "gubu/api/repositories/user"

	"golang.org/x/crypto/scrypt"
	"gorm.io/gorm"
)

// scrypt parameters, matching the stored hash format: 16 byte salt, 64 byte
// key.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// ErrInvalidCredentials is returned on any authentication failure: unknown
// username, missing password or hash mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService owns user accounts and their play history.
type UserService struct {
	db *gorm.DB

	FriendshipRepository friendshiprepo.FriendshipRepository
	PlayerRepository     playerrepo.PlayerRepository
	UserRepository       userrepo.UserRepository
}

// UserServiceDeps is the dependency list for the user service.
type UserServiceDeps struct {
	DB *gorm.DB
}

// NewUserService creates a user service.
func NewUserService(deps *UserServiceDeps) *UserService {
	return &UserService{
		db:                   deps.DB,
		FriendshipRepository: friendshiprepo.NewFriendshipRepository(deps.DB),
		PlayerRepository:     playerrepo.NewPlayerRepository(deps.DB),
		UserRepository:       userrepo.NewUserRepository(deps.DB),
	}
}

// List returns user ids, optionally filtered by exact display name.
func (us *UserService) List(ctx context.Context, displayName string) ([]uint, error) {
	return us.UserRepository.ListIds(ctx, displayName)
}

// Create registers a new user with a hashed password and returns its id.
func (us *UserService) Create(ctx context.Context, username, password, displayName string) (uint, error) {
	salt, hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     username,
		PasswordSalt: salt,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := us.UserRepository.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Get returns the full user view with played games and accepted friends,
// or nil when the user doesn't exist.
func (us *UserService) Get(ctx context.Context, id uint) (*dto.User, error) {
	user, err := us.UserRepository.GetById(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	playedGameIds, err := us.PlayerRepository.ListGameIdsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	friendsUserIds, err := us.FriendshipRepository.ListAcceptedFriendIds(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.User{
		ID:             user.ID,
		DisplayName:    user.DisplayName,
		PlayedGameIds:  playedGameIds,
		FriendsUserIds: friendsUserIds,
	}, nil
}

// Update patches the user's profile and play history. Returns false when
// the user doesn't exist.
func (us *UserService) Update(ctx context.Context, id uint, update *filters.UserUpdate) (bool, error) {
	if update == nil || update.IsEmpty() {
		return false, fmt.Errorf("empty update")
	}

	values := make(map[string]any)
	if update.DisplayName != nil {
		values["display_name"] = *update.DisplayName
	}
	if update.Password != nil {
		salt, hash, err := hashPassword(*update.Password)
		if err != nil {
			return false, err
		}
		values["password_salt"] = salt
		values["password_hash"] = hash
	}

	if len(values) > 0 {
		found, err := us.UserRepository.Update(ctx, id, values)
		if err != nil || !found {
			return found, err
		}
	} else {
		exists, err := us.UserRepository.Exists(ctx, id)
		if err != nil || !exists {
			return exists, err
		}
	}

	if update.PlayedGameIds != nil {
		if err := us.PlayerRepository.ReplacePlayedGames(ctx, id, *update.PlayedGameIds); err != nil {
			return true, err
		}
	}
	if update.AddPlayedGameIds != nil {
		if err := us.PlayerRepository.AddPlayedGames(ctx, id, *update.AddPlayedGameIds); err != nil {
			return true, err
		}
	}
	if update.RemovePlayedGameIds != nil {
		if err := us.PlayerRepository.RemovePlayedGames(ctx, id, *update.RemovePlayedGameIds); err != nil {
			return true, err
		}
	}

	return true, nil
}

// Authenticate checks a username/password pair and returns the user id.
func (us *UserService) Authenticate(ctx context.Context, username string, password *string) (uint, error) {
	user, err := us.UserRepository.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrInvalidCredentials
	}

	// Accounts without a stored hash can't be password checked.
	if user.PasswordHash != "" {
		if password == nil {
			return 0, ErrInvalidCredentials
		}
		if !verifyPassword(*password, user.PasswordSalt, user.PasswordHash) {
			return 0, ErrInvalidCredentials
		}
	}

	return user.ID, nil
}

// hashPassword derives a fresh salt/hash pair, both hex encoded.
func hashPassword(password string) (string, string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", err
	}

	return hex.EncodeToString(salt), hex.EncodeToString(hash), nil
}

// verifyPassword re-derives the hash with the stored salt and compares in
// constant time.
func verifyPassword(password, saltHex, hashHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, stored) == 1
}
