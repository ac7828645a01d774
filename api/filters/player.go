package filters

// PlayerListParams are the query parameters of the player listing. When
// Match is set the endpoint switches to matchmaking mode: users sharing at
// least one played game with the given user.
type PlayerListParams struct {
	Match string `form:"match"`
}
