package tasks_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tasks"
	"workspacemcp/internal/tools/common"
)

// registerWriteTools registers task creation and update tools. These are
// only available when the server runs with write operations enabled.
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create task tool
	createTaskTool := mcp.NewTool("tasks_create",
		mcp.WithDescription("Create a new task, optionally as a subtask"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The task title"),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list to create the task in (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithString("description",
			mcp.Description("Task notes"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Due date as YYYY-MM-DD"),
		),
		mcp.WithString("parentTaskId",
			mcp.Description("Parent task ID to create this task as a subtask of"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandlerWithService(
		"tasks_create", instrumentation.ServiceTasks, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return common.ErrorResult("title is required"), nil
			}

			input := tasks.TaskInput{Title: title}
			if description, ok := args["description"].(string); ok {
				input.Notes = description
			}
			if parentTaskID, ok := args["parentTaskId"].(string); ok {
				input.Parent = parentTaskID
			}
			if dueDateStr, ok := args["dueDate"].(string); ok && dueDateStr != "" {
				due, err := parseDate(dueDateStr, "dueDate")
				if err != nil {
					return common.ErrorResult(err.Error()), nil
				}
				input.Due = due
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			task, err := client.CreateTask(ctx, taskListID, input)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}
			task.TaskListID = taskListID

			return common.JSONResult(task), nil
		}))

	// Update task tool
	updateTaskTool := mcp.NewTool("tasks_update",
		mcp.WithDescription("Update a task's title, notes, due date, or status. Fields that are not provided stay unchanged."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list containing the task (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithString("title",
			mcp.Description("New task title"),
		),
		mcp.WithString("description",
			mcp.Description("New task notes"),
		),
		mcp.WithString("dueDate",
			mcp.Description("New due date as YYYY-MM-DD"),
		),
		mcp.WithString("status",
			mcp.Description("New status: 'needsAction' or 'completed'"),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandlerWithService(
		"tasks_update", instrumentation.ServiceTasks, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			taskID, ok := args["taskId"].(string)
			if !ok || taskID == "" {
				return common.ErrorResult("taskId is required"), nil
			}

			var patch tasks.TaskPatch
			hasUpdate := false

			if title, ok := args["title"].(string); ok && title != "" {
				patch.Title = &title
				hasUpdate = true
			}
			if description, ok := args["description"].(string); ok {
				patch.Notes = &description
				hasUpdate = true
			}
			if dueDateStr, ok := args["dueDate"].(string); ok && dueDateStr != "" {
				due, err := parseDate(dueDateStr, "dueDate")
				if err != nil {
					return common.ErrorResult(err.Error()), nil
				}
				patch.Due = &due
				hasUpdate = true
			}
			if status, ok := args["status"].(string); ok && status != "" {
				if err := validateStatus(status); err != nil {
					return common.ErrorResult(err.Error()), nil
				}
				patch.Status = &status
				hasUpdate = true
			}

			if !hasUpdate {
				return common.ErrorResult("at least one of title, description, dueDate, status must be provided"), nil
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			task, err := client.PatchTask(ctx, taskListID, taskID, patch)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}
			task.TaskListID = taskListID

			return common.JSONResult(task), nil
		}))

	// Mark completed tool
	markCompletedTool := mcp.NewTool("tasks_mark_completed",
		mcp.WithDescription("Mark a task as completed, or reopen it"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task"),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list containing the task (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithBoolean("completed",
			mcp.Description("Completion state to set (default: true)"),
		),
	)

	s.AddTool(markCompletedTool, common.InstrumentedToolHandlerWithService(
		"tasks_mark_completed", instrumentation.ServiceTasks, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			taskID, ok := args["taskId"].(string)
			if !ok || taskID == "" {
				return common.ErrorResult("taskId is required"), nil
			}

			completed := true
			if c, ok := args["completed"].(bool); ok {
				completed = c
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			task, err := client.SetTaskCompletion(ctx, taskListID, taskID, completed)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}
			task.TaskListID = taskListID

			return common.JSONResult(task), nil
		}))

	return nil
}
