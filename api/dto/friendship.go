package dto

// Friendship is one friend request between two users.
type Friendship struct {
	ID       uint `json:"id"`
	Sender   uint `json:"sender"`
	Receiver uint `json:"receiver"`
	Accepted bool `json:"accepted"`
}
