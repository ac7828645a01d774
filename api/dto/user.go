package dto

// User is the full user view, including play history and accepted friends.
type User struct {
	ID             uint   `json:"id"`
	DisplayName    string `json:"display_name"`
	PlayedGameIds  []uint `json:"played_game_ids"`
	FriendsUserIds []uint `json:"friends_user_ids"`
}

// AuthResult carries the id of a successfully authenticated user.
type AuthResult struct {
	UserID uint `json:"user_id"`
}
