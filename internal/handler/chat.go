package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/reagent/reagent/internal/config"
	"github.com/reagent/reagent/internal/models"
)

// Runner runs one agent query to completion. Satisfied by *agent.Agent.
type Runner interface {
	Run(ctx context.Context, query string) string
}

// ChatHandler handles POST /api/v1/chat
type ChatHandler struct {
	runner         Runner
	defaultTimeout int // seconds
}

func NewChatHandler(runner Runner, defaultTimeout int) *ChatHandler {
	return &ChatHandler{runner: runner, defaultTimeout: defaultTimeout}
}

// Chat runs the agent for one prompt. The run is bounded by a per-request
// timeout; the agent itself converts every failure into reply text, so this
// handler only ever validates input and relays the answer.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SetDefaults(h.defaultTimeout)

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		models.WriteError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if len(prompt) > config.DefaultMaxPromptLength {
		models.WriteError(w, http.StatusBadRequest, "prompt too long")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(req.Timeout)*time.Second)
	defer cancel()

	reply := h.runner.Run(ctx, prompt)
	models.WriteJSON(w, http.StatusOK, models.ChatResponse{
		Status: "ok",
		Reply:  reply,
	})
}
