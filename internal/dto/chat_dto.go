package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ChatRequest is a session-authenticated chat turn. Scope selects the
// conversation context; TargetUserID is required only for scope "vendedor"
// (a manager chatting about one assigned vendedor).
type ChatRequest struct {
	Message      string `json:"message"      validate:"required,min=1,max=4000"`
	Scope        string `json:"scope"        validate:"omitempty,oneof=personal equipo vendedor"`
	TargetUserID string `json:"targetUserId" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ChatHistoryResponse struct {
	Data  []ChatMessageResponse `json:"data"`
	Total int                   `json:"total"`
}
