package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created; ordering is by CreatedAt ascending.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string // constant.MessageRoleUser or constant.MessageRoleAssistant
	Content        string
	CreatedAt      time.Time
}
