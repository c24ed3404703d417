package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	Title       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
