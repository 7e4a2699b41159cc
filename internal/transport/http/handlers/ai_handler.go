package handlers

import (
	"net/http"

	"github.com/sumanthd032/smartblog/internal/service"
)

type AIHandler struct {
	assistant *service.AssistantService
}

func NewAIHandler(assistant *service.AssistantService) *AIHandler {
	return &AIHandler{assistant: assistant}
}

func (h *AIHandler) GenerateTitle(w http.ResponseWriter, r *http.Request) {
	var input service.AIRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	title, err := h.assistant.GenerateTitle(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, "generate title")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"title": title})
}

func (h *AIHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var input service.AIRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	summary, err := h.assistant.GenerateSummary(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, "generate summary")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
