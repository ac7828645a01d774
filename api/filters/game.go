package filters

// GameListParams are the query parameters of the game listing. The genre
// filter may be passed more than once.
type GameListParams struct {
	Genre []string `form:"genre"`
}

// GameSearchParams are the query parameters of the catalog search proxy.
// Filters is a raw condition appended to the catalog query.
type GameSearchParams struct {
	Filters string `form:"filters"`
}
