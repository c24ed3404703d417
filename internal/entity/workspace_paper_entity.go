package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkspacePaper marks a paper as visible in a workspace's chat context.
// Removing the association never deletes the underlying paper.
type WorkspacePaper struct {
	WorkspaceId uuid.UUID
	PaperId     uuid.UUID
	AddedAt     time.Time
}
