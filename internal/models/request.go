package models

// ChatRequest for POST /api/v1/chat
type ChatRequest struct {
	Prompt  string `json:"prompt"`
	Timeout int    `json:"timeout,omitempty"` // seconds, optional per-request override
}

func (r *ChatRequest) SetDefaults(defaultTimeout int) {
	if r.Timeout == 0 {
		r.Timeout = defaultTimeout
	}
	if r.Timeout < 10 {
		r.Timeout = 10
	}
	if r.Timeout > 600 {
		r.Timeout = 600
	}
}
