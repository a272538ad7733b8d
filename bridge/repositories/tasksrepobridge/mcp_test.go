package tasksrepobridge_test

import (
	"context"
	"encoding/json"
	"io"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jrazmi/taskboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskboard/sdk/logger"
)

func connectMCP(t *testing.T) (*mcp.ClientSession, fixture) {
	t.Helper()
	ctx := context.Background()
	f := newFixture(t)

	log := logger.NewDefault(logger.WithOutput(io.Discard))
	server := tasksrepobridge.NewMCPServer(tasksrepobridge.Config{Log: log, Repository: f.repo}, "test")

	ct, st := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, st, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "taskboard-test", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })

	return cs, f
}

// callTool invokes name and decodes the structured result into out. It
// reports whether the tool flagged an error.
func callTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any, out any) bool {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return true
	}
	if res.IsError {
		return true
	}
	if out != nil {
		data, err := json.Marshal(res.StructuredContent)
		if err != nil {
			t.Fatalf("marshal structured content: %v", err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("decode %s result: %v", name, err)
		}
	}
	return false
}

func TestMCPTools(t *testing.T) {
	cs, _ := connectMCP(t)

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{"list_tasks", "task_stats", "add_task", "update_task", "delete_task"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing tool %q in %v", want, names)
		}
	}
}

func TestMCPListTasks(t *testing.T) {
	cs, _ := connectMCP(t)

	var out tasksrepobridge.ListTasksOutput
	if callTool(t, cs, "list_tasks", map[string]any{"status": "Done"}, &out) {
		t.Fatal("list_tasks failed")
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != 2 {
		t.Errorf("tasks = %+v", out.Tasks)
	}
	if out.Stats.Total != 2 {
		t.Errorf("stats = %+v", out.Stats)
	}

	if !callTool(t, cs, "list_tasks", map[string]any{"status": "Blocked"}, nil) {
		t.Error("expected an error for an unknown status")
	}
}

func TestMCPMutations(t *testing.T) {
	cs, f := connectMCP(t)
	ctx := context.Background()

	var added tasksrepobridge.TaskOutput
	if callTool(t, cs, "add_task", map[string]any{"title": "From agent", "description": "via tools"}, &added) {
		t.Fatal("add_task failed")
	}
	if !added.Found || added.Task == nil || added.Task.ID != 3 || added.Task.Status != "ToDo" {
		t.Fatalf("added = %+v", added)
	}

	if !callTool(t, cs, "add_task", map[string]any{"title": " ", "description": "x"}, nil) {
		t.Error("expected a validation error")
	}

	var updated tasksrepobridge.TaskOutput
	if callTool(t, cs, "update_task", map[string]any{"id": 3, "status": "In Progress"}, &updated) {
		t.Fatal("update_task failed")
	}
	if updated.Task == nil || updated.Task.Status != "InProgress" || updated.Task.Title != "From agent" {
		t.Errorf("updated = %+v", updated)
	}

	var missing tasksrepobridge.TaskOutput
	if callTool(t, cs, "update_task", map[string]any{"id": 42, "status": "Done"}, &missing) || missing.Found {
		t.Errorf("update of unknown id = %+v", missing)
	}

	var stats tasksrepobridge.Stats
	callTool(t, cs, "task_stats", map[string]any{}, &stats)
	if stats != (tasksrepobridge.Stats{Total: 3, ToDo: 1, InProgress: 1, Done: 1}) {
		t.Errorf("stats = %+v", stats)
	}

	var deleted tasksrepobridge.TaskOutput
	if callTool(t, cs, "delete_task", map[string]any{"id": 1}, &deleted) || !deleted.Found {
		t.Fatalf("deleted = %+v", deleted)
	}
	if c := f.repo.Counts(ctx); c.Total != 2 {
		t.Errorf("total = %d, want 2", c.Total)
	}
}
