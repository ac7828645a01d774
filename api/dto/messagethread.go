package dto

// MessageThreadMember is one participant of a thread.
type MessageThreadMember struct {
	UserID uint `json:"user_id"`
}

// MessageThreadMessage is one message of a thread, ordered by creation time.
type MessageThreadMessage struct {
	ID              uint   `json:"id"`
	AuthorUserID    uint   `json:"author_user_id"`
	AuthorSessionID string `json:"author_session_id"`
	CreateTimestamp string `json:"create_timestamp"`
	Content         string `json:"content"`
}

// MessageThread is the full thread view.
type MessageThread struct {
	ID       uint                   `json:"id"`
	Members  []MessageThreadMember  `json:"members"`
	Messages []MessageThreadMessage `json:"messages"`
}
