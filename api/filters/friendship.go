package filters

// FriendshipListParams are the query parameters of the friendship listing.
// Member may be passed once (either side) or twice (the exact pair) and is
// ignored when sender or receiver are present.
type FriendshipListParams struct {
	Sender   string   `form:"sender"`
	Receiver string   `form:"receiver"`
	Member   []string `form:"member"`
	Accepted *bool    `form:"accepted"`
}

// FriendshipFilter is the typed filter consumed by the repository.
type FriendshipFilter struct {
	Sender   *uint
	Receiver *uint
	Members  []uint
	Accepted *bool
}
