package dto

// GameSummary is one recommended game, in the order the catalog returned it.
type GameSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
