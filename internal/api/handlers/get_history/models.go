package get_history

import (
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/session"
)

// HistoryEntryResponse HTTP model записи транскрипта
type HistoryEntryResponse struct {
	Operation string `json:"operation"`
	Detail    string `json:"detail"`
	Result    string `json:"result"`
	At        string `json:"at"`
}

// HistoryResponse HTTP response model
type HistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}

// FromSessionHistory конвертирует транскрипт сессии в HTTP response
func FromSessionHistory(entries []session.Entry) *HistoryResponse {
	history := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, HistoryEntryResponse{
			Operation: e.Operation,
			Detail:    e.Detail,
			Result:    e.Result,
			At:        e.At.Format(time.RFC3339),
		})
	}
	return &HistoryResponse{History: history}
}
