package filters

// UserListParams are the query parameters of the user listing.
type UserListParams struct {
	DisplayName string `form:"display_name"`
}

// UserUpdate is the accepted patch body for a user. Pointer fields
// distinguish an absent field from an explicit empty value. The three
// played-game lists are applied in order: replace, then add, then remove.
type UserUpdate struct {
	DisplayName         *string `json:"display_name"`
	Password            *string `json:"password"`
	PlayedGameIds       *[]uint `json:"played_game_ids"`
	AddPlayedGameIds    *[]uint `json:"add_played_game_ids"`
	RemovePlayedGameIds *[]uint `json:"remove_played_game_ids"`
}

// IsEmpty reports whether the patch carries no field at all.
func (u *UserUpdate) IsEmpty() bool {
	return u.DisplayName == nil &&
		u.Password == nil &&
		u.PlayedGameIds == nil &&
		u.AddPlayedGameIds == nil &&
		u.RemovePlayedGameIds == nil
}
