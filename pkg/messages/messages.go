package messages

const (
	BadStatusCodeMsg = "catalog returned status code %d on URL %s"
	EmptyBody        = "empty body"
	FailedToParseMsg = "failed to parse catalog response"
	FiltersNotNil    = "filters can't be nil"
	FriendshipExists = "a friendship with these two members already exists"
	NoRecommendation = "no recommendation available"
	RequestFailedMsg = "catalog request failed on URL %s"
	SelfFriendship   = "sender and receiver may not be equal"
	ThreadExists     = "a message thread with these members already exists"
	UserNotFound     = "user not found"
)
