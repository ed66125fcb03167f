package tasks_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/config"
	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tasks"
	"workspacemcp/internal/tools/common"
)

// registerListTools registers the read-only task tools
func registerListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List task lists tool
	listTaskListsTool := mcp.NewTool("tasks_list_task_lists",
		mcp.WithDescription("List all Google Tasks task lists"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listTaskListsTool, common.InstrumentedToolHandlerWithService(
		"tasks_list_task_lists", instrumentation.ServiceTasks, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			taskLists, err := client.ListTaskLists(ctx)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			payload := struct {
				TaskLists []tasks.TaskList `json:"taskLists"`
				Count     int              `json:"count"`
			}{
				TaskLists: taskLists,
				Count:     len(taskLists),
			}
			return common.JSONResult(payload), nil
		}))

	// List tasks tool
	listTasksTool := mcp.NewTool("tasks_list_tasks",
		mcp.WithDescription("List open tasks in a task list"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list to read (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of tasks to return (default: 100)"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandlerWithService(
		"tasks_list_tasks", instrumentation.ServiceTasks, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			maxResults := config.DefaultTaskMaxResults()
			if mr, ok := args["maxResults"].(float64); ok && mr > 0 {
				maxResults = int(mr)
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			taskList, err := client.ListTasks(ctx, taskListID, maxResults)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			return common.JSONResult(taskListPayload(taskList, taskListID)), nil
		}))

	// Search tasks by text
	searchTasksTool := mcp.NewTool("tasks_search",
		mcp.WithDescription("Search tasks by text in title or notes. The Tasks API has no server-side search, so matching happens client-side."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to match in task titles and notes (case-insensitive)"),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list to search (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of matching tasks to return (default: 100)"),
		),
	)

	s.AddTool(searchTasksTool, common.InstrumentedToolHandlerWithService(
		"tasks_search", instrumentation.ServiceTasks, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return common.ErrorResult("query is required"), nil
			}

			maxResults := config.MaxTaskSearchResults()
			if mr, ok := args["maxResults"].(float64); ok && mr > 0 {
				maxResults = int(mr)
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			// Fetch the whole list, then filter client-side
			taskList, err := client.ListTasks(ctx, taskListID, 0)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			matching := tasks.FilterByQuery(taskList, query, maxResults)
			return common.JSONResult(taskListPayload(matching, taskListID)), nil
		}))

	// Search tasks by due-date period
	searchByPeriodTool := mcp.NewTool("tasks_search_by_period",
		mcp.WithDescription("Find tasks whose due date falls within a date range. Tasks without a due date are skipped."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("Range start as YYYY-MM-DD"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("Range end as YYYY-MM-DD (inclusive)"),
		),
		mcp.WithString("taskListId",
			mcp.Description("Task list to search (default: DEFAULT_TASK_LIST_ID env var, or '@default')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of matching tasks to return (default: 100)"),
		),
	)

	s.AddTool(searchByPeriodTool, common.InstrumentedToolHandlerWithService(
		"tasks_search_by_period", instrumentation.ServiceTasks, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)
			taskListID := getTaskListID(args)

			startStr, ok := args["startDate"].(string)
			if !ok || startStr == "" {
				return common.ErrorResult("startDate is required"), nil
			}
			endStr, ok := args["endDate"].(string)
			if !ok || endStr == "" {
				return common.ErrorResult("endDate is required"), nil
			}

			start, err := parseDate(startStr, "startDate")
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}
			end, err := parseDate(endStr, "endDate")
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}
			if end.Before(start) {
				return common.ErrorResult("endDate must not be before startDate"), nil
			}

			maxResults := config.MaxTaskSearchResults()
			if mr, ok := args["maxResults"].(float64); ok && mr > 0 {
				maxResults = int(mr)
			}

			client, err := getTasksClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			taskList, err := client.ListTasks(ctx, taskListID, 0)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			matching := tasks.FilterByDueRange(taskList, start, end, maxResults)
			return common.JSONResult(taskListPayload(matching, taskListID)), nil
		}))

	return nil
}

// taskListPayload is the shared success shape for task listing tools.
func taskListPayload(taskList []tasks.Task, taskListID string) interface{} {
	return struct {
		Tasks      []tasks.Task `json:"tasks"`
		Count      int          `json:"count"`
		TaskListID string       `json:"taskListId"`
	}{
		Tasks:      taskList,
		Count:      len(taskList),
		TaskListID: taskListID,
	}
}
