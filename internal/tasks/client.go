package tasks

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"workspacemcp/internal/google"
)

// Client wraps the Google Tasks service
type Client struct {
	svc     *tasks.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Tasks client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// ListTaskLists lists all task lists for the authenticated user
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.svc.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	var taskLists []TaskList
	for _, tl := range result.Items {
		taskLists = append(taskLists, toTaskList(tl))
	}

	return taskLists, nil
}

// ListTasks lists open tasks in a task list. Completed and hidden tasks are
// excluded.
func (c *Client) ListTasks(ctx context.Context, taskListID string, maxResults int) ([]Task, error) {
	if taskListID == "" {
		return nil, fmt.Errorf("taskListID is required")
	}

	call := c.svc.Tasks.List(taskListID).
		Context(ctx).
		ShowCompleted(false).
		ShowHidden(false)

	if maxResults > 0 {
		call = call.MaxResults(int64(maxResults))
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var taskList []Task
	for _, t := range result.Items {
		task := toTask(t)
		task.TaskListID = taskListID
		taskList = append(taskList, task)
	}

	return taskList, nil
}

// CreateTask creates a new task, optionally as a subtask of input.Parent
func (c *Client) CreateTask(ctx context.Context, taskListID string, input TaskInput) (*Task, error) {
	if taskListID == "" {
		return nil, fmt.Errorf("taskListID is required")
	}
	if input.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	t := &tasks.Task{
		Title: input.Title,
		Notes: input.Notes,
	}

	if !input.Due.IsZero() {
		t.Due = input.Due.Format(time.RFC3339)
	}

	call := c.svc.Tasks.Insert(taskListID, t).Context(ctx)
	if input.Parent != "" {
		call = call.Parent(input.Parent)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	result := toTask(created)
	result.TaskListID = taskListID
	return &result, nil
}

// PatchTask applies a partial update to a task. Only the non-nil fields of
// the patch are sent.
func (c *Client) PatchTask(ctx context.Context, taskListID, taskID string, patch TaskPatch) (*Task, error) {
	if taskListID == "" {
		return nil, fmt.Errorf("taskListID is required")
	}
	if taskID == "" {
		return nil, fmt.Errorf("taskID is required")
	}

	t := &tasks.Task{}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Due != nil {
		t.Due = patch.Due.Format(time.RFC3339)
	}
	if patch.Completed != nil {
		completed := patch.Completed.Format(time.RFC3339)
		t.Completed = &completed
	}

	updated, err := c.svc.Tasks.Patch(taskListID, taskID, t).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch task: %w", err)
	}

	result := toTask(updated)
	result.TaskListID = taskListID
	return &result, nil
}

// SetTaskCompletion marks a task completed or reopens it. Completing a task
// stamps the completion time with the current time.
func (c *Client) SetTaskCompletion(ctx context.Context, taskListID, taskID string, completed bool) (*Task, error) {
	status := "needsAction"
	patch := TaskPatch{Status: &status}

	if completed {
		status = "completed"
		now := time.Now().UTC()
		patch.Completed = &now
	}

	return c.PatchTask(ctx, taskListID, taskID, patch)
}
