package rest

import (
	"fmt"
	"net/http"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port/usecases_port"
)

type AgentHandlers struct {
	listAgentsUC usecases_port.ListAgentsUseCase
}

func NewAgentHandlers(listAgentsUC usecases_port.ListAgentsUseCase) *AgentHandlers {
	return &AgentHandlers{listAgentsUC: listAgentsUC}
}

func (h *AgentHandlers) ListAgents(w http.ResponseWriter, r *http.Request) {
	page, err := GetPageOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "ListAgents: invalid page value")
		return
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "ListAgents: invalid limit value")
		return
	}

	state := r.URL.Query().Get("state")

	result, err := h.listAgentsUC.Execute(r.Context(), *page, *limit, state)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("ListAgents: failed to list agents: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse[AgentResponse]{
		Items:      toAgentResponses(result.Items),
		TotalCount: result.TotalCount,
		HasMore:    result.HasMore,
		Page:       *page,
		Limit:      *limit,
	})
}
