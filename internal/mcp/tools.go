package mcp

import "github.com/mark3labs/mcp-go/mcp"

var createToolDef = mcp.NewTool("note_create",
	mcp.WithDescription("Create a calendar note with a title, markdown content, date, and category."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
	mcp.WithString("content", mcp.Required(), mcp.Description("Note body (lightweight markdown allowed)")),
	mcp.WithString("date", mcp.Description("Calendar date YYYY-MM-DD (defaults to today)")),
	mcp.WithString("category", mcp.Required(), mcp.Description("One of: work, personal, health, finance, food")),
	mcp.WithArray("tags", mcp.Description("Tags (lowercased, deduplicated)"),
		mcp.Items(map[string]any{"type": "string"})),
	mcp.WithArray("checklist", mcp.Description("Checklist items"),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":      map[string]any{"type": "string"},
				"completed": map[string]any{"type": "boolean"},
			},
			"required": []string{"text"},
		})),
	mcp.WithBoolean("pinned", mcp.Description("Pin the note to the top of lists")),
)

var fetchToolDef = mcp.NewTool("note_fetch",
	mcp.WithDescription("Fetch a single note by id."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Note id")),
)

var updateToolDef = mcp.NewTool("note_update",
	mcp.WithDescription("Update fields of an existing note. Omitted fields are left unchanged."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Note id")),
	mcp.WithString("title", mcp.Description("New title")),
	mcp.WithString("content", mcp.Description("New body")),
	mcp.WithString("date", mcp.Description("New calendar date YYYY-MM-DD")),
	mcp.WithString("category", mcp.Description("New category")),
	mcp.WithArray("tags", mcp.Description("Replacement tag list"),
		mcp.Items(map[string]any{"type": "string"})),
	mcp.WithArray("checklist", mcp.Description("Replacement checklist"),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":        map[string]any{"type": "string"},
				"text":      map[string]any{"type": "string"},
				"completed": map[string]any{"type": "boolean"},
			},
			"required": []string{"text"},
		})),
	mcp.WithBoolean("pinned", mcp.Description("New pinned state")),
)

var deleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Delete a note permanently."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Note id")),
)

var listToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List notes, pinned first then most recently updated, with optional filters."),
	mcp.WithString("search", mcp.Description("Case-insensitive substring match on title or content")),
	mcp.WithString("category", mcp.Description("Exact category filter")),
	mcp.WithString("date", mcp.Description("Exact calendar date filter YYYY-MM-DD")),
)

var calendarToolDef = mcp.NewTool("note_calendar",
	mcp.WithDescription("Get the six-week calendar grid for a month with per-day note counts and category dots."),
	mcp.WithNumber("year", mcp.Description("Year (defaults to the current month when omitted with month)")),
	mcp.WithNumber("month", mcp.Description("Month 1-12")),
	mcp.WithString("selected", mcp.Description("Optional highlighted date YYYY-MM-DD")),
)

var statsToolDef = mcp.NewTool("note_stats",
	mcp.WithDescription("Get summary counters (totals, this week, completed tasks, per-category) and the recent-activity feed."),
)
