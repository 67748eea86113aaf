package main

import (
	"os"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
		{",", nil},
	}

	for _, tt := range tests {
		got := parseTags(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseTags(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("parseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseTasks(t *testing.T) {
	tasks := parseTasks([]string{"Buy milk", "[x] Call bank", "  ", "[x]   trimmed  "})

	if len(tasks) != 3 {
		t.Fatalf("parseTasks = %v, want 3 items", tasks)
	}
	if tasks[0].Text != "Buy milk" || tasks[0].Completed {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
	if tasks[1].Text != "Call bank" || !tasks[1].Completed {
		t.Errorf("tasks[1] = %+v", tasks[1])
	}
	if tasks[2].Text != "trimmed" || !tasks[2].Completed {
		t.Errorf("tasks[2] = %+v", tasks[2])
	}

	if parseTasks(nil) != nil {
		t.Error("parseTasks(nil) should be nil")
	}
}

func TestIsCLIMode(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"notecal"}, false},
		{[]string{"notecal", "add"}, true},
		{[]string{"notecal", "calendar"}, true},
		{[]string{"notecal", "serve"}, true},
		{[]string{"notecal", "--help"}, true},
		{[]string{"notecal", "-v"}, true},
		{[]string{"notecal", "bogus"}, false},
	}

	for _, tt := range tests {
		os.Args = tt.args
		if got := isCLIMode(); got != tt.want {
			t.Errorf("isCLIMode(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestNewCLIApp_Commands(t *testing.T) {
	app := newCLIApp(nil, nil)

	want := []string{"add", "show", "update", "delete", "list", "calendar", "stats", "serve"}
	if len(app.Commands) != len(want) {
		t.Fatalf("app has %d commands, want %d", len(app.Commands), len(want))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("Commands[%d] = %q, want %q", i, app.Commands[i].Name, name)
		}
	}

	// Every known dispatch subcommand must be a real command
	for name := range cliCommands {
		if name == "help" {
			continue // built-in
		}
		found := false
		for _, cmd := range app.Commands {
			if cmd.Name == name {
				found = true
			}
		}
		if !found {
			t.Errorf("dispatch table names %q but the app has no such command", name)
		}
	}
}
