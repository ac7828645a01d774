package filters

// MessageThreadListParams are the query parameters of the thread listing.
// Strict restricts the results to threads whose member set matches the given
// ids exactly instead of just containing them.
type MessageThreadListParams struct {
	MemberUserID []string `form:"member_user_id" binding:"required"`
	Strict       string   `form:"member_user_id_strict"`
}
