package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// ListTasksArgs is the input for the list_tasks tool.
type ListTasksArgs struct {
	Status string `json:"status,omitempty" jsonschema:"Status to filter by: ToDo, InProgress or Done (labels such as In Progress also work). Empty returns every status."`
	Search string `json:"search,omitempty" jsonschema:"Case-insensitive text matched against title and description"`
}

// ListTasksOutput is the filtered view plus counts over the whole board.
type ListTasksOutput struct {
	Tasks []Task `json:"tasks"`
	Stats Stats  `json:"stats"`
}

// StatsArgs is the (empty) input for the task_stats tool.
type StatsArgs struct{}

// AddTaskArgs is the input for the add_task tool.
type AddTaskArgs struct {
	Title       string `json:"title" jsonschema:"Task title, must not be blank"`
	Description string `json:"description" jsonschema:"Task description, must not be blank"`
}

// UpdateTaskArgs is the input for the update_task tool. Omitted fields are
// left alone.
type UpdateTaskArgs struct {
	ID          int     `json:"id" jsonschema:"Task id"`
	Title       *string `json:"title,omitempty" jsonschema:"New title"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	Status      *string `json:"status,omitempty" jsonschema:"New status: ToDo, InProgress or Done"`
}

// TaskIDArgs names a single task.
type TaskIDArgs struct {
	ID int `json:"id" jsonschema:"Task id"`
}

// TaskOutput reports the task after a change. Found is false when no task
// has the id; the call is then a no-op.
type TaskOutput struct {
	Found bool  `json:"found"`
	Task  *Task `json:"task,omitempty"`
}

// NewMCPServer exposes the repository as MCP tools.
func NewMCPServer(cfg Config, version string) *mcp.Server {
	b := newBridge(cfg.Log, cfg.Repository)

	server := mcp.NewServer(&mcp.Implementation{Name: "taskboard", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks in board order, optionally filtered by status and search text.",
	}, b.mcpListTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_stats",
		Description: "Count tasks on the board by status.",
	}, b.mcpStats)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task with status ToDo.",
	}, b.mcpAddTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Change the title, description or status of a task.",
	}, b.mcpUpdateTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task. Deleting an unknown id does nothing.",
	}, b.mcpDeleteTask)

	return server
}

// AddMCPRoutes serves the MCP tools over streamable HTTP at path.
func AddMCPRoutes(wh *web.WebHandler, path string, cfg Config, version string) {
	server := NewMCPServer(cfg, version)
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	wh.HandleRaw(path, handler)
}

func (b *bridge) mcpListTasks(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, ListTasksOutput, error) {
	filter, err := parseFilter(QueryParams{Status: args.Status, SearchTerm: args.Search})
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	return nil, ListTasksOutput{
		Tasks: MarshalListToBridge(b.taskRepository.Query(ctx, filter)),
		Stats: MarshalStats(b.taskRepository.Counts(ctx)),
	}, nil
}

func (b *bridge) mcpStats(ctx context.Context, req *mcp.CallToolRequest, args StatsArgs) (*mcp.CallToolResult, Stats, error) {
	return nil, MarshalStats(b.taskRepository.Counts(ctx)), nil
}

func (b *bridge) mcpAddTask(ctx context.Context, req *mcp.CallToolRequest, args AddTaskArgs) (*mcp.CallToolResult, TaskOutput, error) {
	task, err := b.taskRepository.Add(ctx, tasksrepo.CreateTask{Title: args.Title, Description: args.Description})
	if err != nil {
		return nil, TaskOutput{}, err
	}

	out := MarshalToBridge(task)
	return nil, TaskOutput{Found: true, Task: &out}, nil
}

func (b *bridge) mcpUpdateTask(ctx context.Context, req *mcp.CallToolRequest, args UpdateTaskArgs) (*mcp.CallToolResult, TaskOutput, error) {
	update, err := MarshalUpdateToRepository(UpdateTaskInput{
		Title:       args.Title,
		Description: args.Description,
		Status:      args.Status,
	})
	if err != nil {
		return nil, TaskOutput{}, err
	}

	if err := b.taskRepository.Update(ctx, args.ID, update); err != nil {
		return nil, TaskOutput{}, err
	}

	return b.mcpTaskOutput(ctx, args.ID)
}

func (b *bridge) mcpDeleteTask(ctx context.Context, req *mcp.CallToolRequest, args TaskIDArgs) (*mcp.CallToolResult, TaskOutput, error) {
	_, result, err := b.mcpTaskOutput(ctx, args.ID)
	if err != nil {
		return nil, TaskOutput{}, err
	}

	if err := b.taskRepository.Delete(ctx, args.ID); err != nil {
		return nil, TaskOutput{}, err
	}
	return nil, result, nil
}

func (b *bridge) mcpTaskOutput(ctx context.Context, id int) (*mcp.CallToolResult, TaskOutput, error) {
	task, err := b.taskRepository.Get(ctx, id)
	switch {
	case errors.Is(err, tasksrepo.ErrNotFound):
		return nil, TaskOutput{Found: false}, nil
	case err != nil:
		return nil, TaskOutput{}, err
	}

	out := MarshalToBridge(task)
	return nil, TaskOutput{Found: true, Task: &out}, nil
}
