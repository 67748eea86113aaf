package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"notecal/internal/config"
	"notecal/internal/errors"
	"notecal/internal/note"
	"notecal/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// CreateRequest represents the arguments for note_create.
type CreateRequest struct {
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Date      string               `json:"date,omitempty"`
	Category  string               `json:"category"`
	Tags      []string             `json:"tags,omitempty"`
	Checklist []note.ChecklistItem `json:"checklist,omitempty"`
	Pinned    bool                 `json:"pinned,omitempty"`
}

// FetchRequest represents the arguments for note_fetch.
type FetchRequest struct {
	ID string `json:"id"`
}

// UpdateRequest represents the arguments for note_update.
type UpdateRequest struct {
	ID        string                `json:"id"`
	Title     *string               `json:"title,omitempty"`
	Content   *string               `json:"content,omitempty"`
	Date      *string               `json:"date,omitempty"`
	Category  *string               `json:"category,omitempty"`
	Tags      *[]string             `json:"tags,omitempty"`
	Checklist *[]note.ChecklistItem `json:"checklist,omitempty"`
	Pinned    *bool                 `json:"pinned,omitempty"`
}

// DeleteRequest represents the arguments for note_delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ListRequest represents the arguments for note_list.
type ListRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"`
}

// CalendarRequest represents the arguments for note_calendar.
type CalendarRequest struct {
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
	Selected string `json:"selected,omitempty"`
}

// Handler implementations

// HandleCreate handles the note_create tool call.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Create(h.db, ops.CreateInput{
		Title:     input.Title,
		Content:   input.Content,
		Date:      input.Date,
		Category:  input.Category,
		Tags:      input.Tags,
		Checklist: input.Checklist,
		Pinned:    input.Pinned,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the note_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(h.db, ops.FetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the note_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Update(h.db, ops.UpdateInput{
		ID:        input.ID,
		Title:     input.Title,
		Content:   input.Content,
		Date:      input.Date,
		Category:  input.Category,
		Tags:      input.Tags,
		Checklist: input.Checklist,
		Pinned:    input.Pinned,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the note_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.db, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the note_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.db, h.cfg, ops.ListInput{
		Search:   input.Search,
		Category: input.Category,
		Date:     input.Date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCalendar handles the note_calendar tool call.
func (h *Handlers) HandleCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CalendarRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Month(h.db, ops.MonthInput{
		Year:     input.Year,
		Month:    input.Month,
		Selected: input.Selected,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStats handles the note_stats tool call.
func (h *Handlers) HandleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Stats(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if nErr, ok := err.(*errors.NoteError); ok {
		errorObj := map[string]any{
			"code":    nErr.Code,
			"message": nErr.Message,
			"status":  nErr.Status,
		}
		if nErr.Code != errors.ErrInternal && nErr.Details != nil {
			errorObj["details"] = nErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
