package dto

// Game is the stored game view. IgdbID is null when the game has no catalog
// entry.
type Game struct {
	ID     uint   `json:"id"`
	IgdbID *int   `json:"igdb_id"`
	Name   string `json:"name"`
}
