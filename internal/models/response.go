package models

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ChatResponse is returned by POST /api/v1/chat
type ChatResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

// ToolInfo describes one registered tool for GET /api/v1/tools
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolsResponse is returned by GET /api/v1/tools
type ToolsResponse struct {
	Status string     `json:"status"`
	Tools  []ToolInfo `json:"tools"`
}
