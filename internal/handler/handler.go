package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/santigl/NBAStats/internal/bot"
)

// CommandRequest is the webhook payload the chat framework posts for each
// command invocation.
type CommandRequest struct {
	Command   string   `json:"command"`
	Args      []string `json:"args"`
	ChannelID string   `json:"channel_id"`
	UserID    string   `json:"user_id"`
}

// CommandResponse carries the single-line reply back to the framework.
type CommandResponse struct {
	Reply        string `json:"reply"`
	InvocationID string `json:"invocation_id"`
}

// BotHandler handles HTTP requests from the chat framework.
type BotHandler struct {
	bot    *bot.Bot
	logger *logrus.Logger
}

// NewBotHandler creates a new bot handler.
func NewBotHandler(b *bot.Bot, logger *logrus.Logger) *BotHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &BotHandler{
		bot:    b,
		logger: logger,
	}
}

// HandleCommand runs one chat command and returns its reply.
func (h *BotHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Command == "" {
		respondError(w, http.StatusBadRequest, "command is required", nil)
		return
	}

	inv := bot.Invocation{
		ID:      uuid.NewString(),
		Command: req.Command,
		Args:    req.Args,
		Channel: req.ChannelID,
		User:    req.UserID,
	}

	reply := h.bot.HandleCommand(r.Context(), inv)

	respondJSON(w, http.StatusOK, CommandResponse{
		Reply:        reply.Text,
		InvocationID: inv.ID,
	})
}

// ListCommands returns the registered command names.
func (h *BotHandler) ListCommands(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"commands": h.bot.CommandNames(),
	})
}

// HealthCheck returns service health.
func (h *BotHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "nbastats-bot",
	})
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errorMsg := message
	if err != nil {
		errorMsg = message + ": " + err.Error()
	}
	json.NewEncoder(w).Encode(map[string]string{
		"error": errorMsg,
	})
}
