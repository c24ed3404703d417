package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	WorkspaceId uuid.UUID `json:"workspace_id" validate:"required"`
	Title       string    `json:"title" validate:"omitempty,max=255"`
}

type ConversationResponse struct {
	Id          uuid.UUID  `json:"id"`
	WorkspaceId uuid.UUID  `json:"workspace_id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Id             uuid.UUID `json:"id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	Message        string    `json:"message" validate:"required,min=1"`
}

type ChatResponse struct {
	Message  MessageResponse `json:"message"`
	Response MessageResponse `json:"response"`
}
