package devnet

import "github.com/google/uuid"

// topicPrefix and topicSuffix frame the content topic of a conversation.
const (
	topicPrefix = "/indie-chat/1/"
	topicSuffix = "/proto"
)

// newID returns a time-ordered UUIDv7, or a random v4 when the clock source
// fails. Sorting message IDs of one conversation then follows send order.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func newTopic(id string) string {
	return topicPrefix + id + topicSuffix
}
