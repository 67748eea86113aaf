package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"notecal/internal/config"
	"notecal/internal/errors"
	"notecal/internal/note"
	"notecal/internal/ops"
	"notecal/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "notecal",
		Usage:   "Personal notes with a calendar",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db),
			showCmd(db),
			updateCmd(db),
			deleteCmd(db),
			listCmd(db, cfg),
			calendarCmd(db),
			statsCmd(db),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a new note (reads content from stdin when piped)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true, Usage: "Note title"},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "Note content (or pipe via stdin)"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Note date (YYYY-MM-DD, defaults to today)"},
			&cli.StringFlag{Name: "category", Value: "personal", Usage: "Category: work|personal|health|finance|food"},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
			&cli.StringSliceFlag{Name: "task", Usage: "Checklist item (repeatable; prefix with '[x] ' to mark done)"},
			&cli.BoolFlag{Name: "pin", Usage: "Pin the note"},
		},
		Action: func(c *cli.Context) error {
			content := c.String("content")
			if content == "" && stdinHasData() {
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				content = text
			}

			input := ops.CreateInput{
				Title:     c.String("title"),
				Content:   content,
				Date:      c.String("date"),
				Category:  c.String("category"),
				Tags:      parseTags(c.String("tags")),
				Checklist: parseTasks(c.StringSlice("task")),
				Pinned:    c.Bool("pin"),
			}

			output, err := ops.Create(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a note by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Fetch(db, ops.FetchInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// updateCmd creates the update command.
func updateCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update an existing note (optionally reads content from stdin)",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "New content"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "New date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "category", Usage: "New category"},
			&cli.StringFlag{Name: "tags", Usage: "New comma-separated tags (empty string clears)"},
			&cli.StringSliceFlag{Name: "task", Usage: "Replacement checklist item (repeatable)"},
			&cli.BoolFlag{Name: "pin", Usage: "Pin the note"},
			&cli.BoolFlag{Name: "unpin", Usage: "Unpin the note"},
		},
		Action: func(c *cli.Context) error {
			input := ops.UpdateInput{ID: c.Args().First()}

			if title := c.String("title"); title != "" {
				input.Title = &title
			}
			if content := c.String("content"); content != "" {
				input.Content = &content
			} else if stdinHasData() {
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				if text != "" {
					input.Content = &text
				}
			}
			if date := c.String("date"); date != "" {
				input.Date = &date
			}
			if category := c.String("category"); category != "" {
				input.Category = &category
			}
			if c.IsSet("tags") {
				tags := parseTags(c.String("tags"))
				input.Tags = &tags
			}
			if c.IsSet("task") {
				tasks := parseTasks(c.StringSlice("task"))
				input.Checklist = &tasks
			}
			if c.Bool("pin") {
				pinned := true
				input.Pinned = &pinned
			}
			if c.Bool("unpin") {
				pinned := false
				input.Pinned = &pinned
			}

			output, err := ops.Update(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a note",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Delete(db, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List notes, pinned first then most recently updated",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Search in title and content"},
			&cli.StringFlag{Name: "category", Usage: "Filter by category"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Filter by date (YYYY-MM-DD)"},
			&cli.BoolFlag{Name: "compact", Usage: "Use shorter content previews"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(db, cfg, ops.ListInput{
				Search:   c.String("search"),
				Category: c.String("category"),
				Date:     c.String("date"),
				Compact:  c.Bool("compact"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// calendarCmd creates the calendar command.
func calendarCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Show the month grid with per-day note counts",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Aliases: []string{"y"}, Usage: "Year (defaults to current)"},
			&cli.IntFlag{Name: "month", Aliases: []string{"m"}, Usage: "Month 1-12 (defaults to current)"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Highlight a date (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Month(db, ops.MonthInput{
				Year:     c.Int("year"),
				Month:    c.Int("month"),
				Selected: c.String("date"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show collection statistics and recent activity",
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(db)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8264, Usage: "Port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, Version, c.String("bind"), c.Int("port"))
			if err := web.Run(srv); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if nErr, ok := err.(*errors.NoteError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", nErr.Code, nErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseTags splits a comma-separated string into a slice of tags.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseTasks converts --task flag values into checklist items. A "[x] "
// prefix marks the item completed.
func parseTasks(items []string) []note.ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	tasks := make([]note.ChecklistItem, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item)
		completed := false
		if rest, ok := strings.CutPrefix(text, "[x]"); ok {
			completed = true
			text = strings.TrimSpace(rest)
		}
		if text == "" {
			continue
		}
		tasks = append(tasks, note.ChecklistItem{Text: text, Completed: completed})
	}
	return tasks
}
