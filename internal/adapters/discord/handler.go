package discord

import (
	"recruitbot/internal/ports/input"
	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	announcements input.AnnouncementUseCase
	translator    output.T
	log           logx.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	announcements input.AnnouncementUseCase,
	translator output.T,
	log logx.Logger,
) *Handler {
	return &Handler{
		announcements: announcements,
		translator:    translator,
		log:           log,
	}
}
