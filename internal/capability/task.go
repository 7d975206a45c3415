package capability

import (
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// TaskRunSource records what triggered a task run.
type TaskRunSource int

const (
	TaskRunSourceSystem TaskRunSource = iota
	TaskRunSourceUser
	TaskRunSourceFolderOpen
	TaskRunSourceConfigurationChange
)

// TaskIdentifier identifies a task by type and type-specific properties.
type TaskIdentifier struct {
	Type       string
	Properties map[string]any
}

// Task is a configured, contributed or in-memory task.
type Task struct {
	ID              string
	Label           string
	Type            string
	Group           string
	WorkspaceFolder string
	Identifier      TaskIdentifier
}

// TaskSummary is the outcome of a finished task.
type TaskSummary struct {
	ExitCode *int
}

// TaskFilter narrows Tasks.
type TaskFilter struct {
	Type    string
	Version string
}

// TaskTerminateResponse reports the outcome of terminating a task.
type TaskTerminateResponse struct {
	TaskID  string
	Success bool
	Code    int
}

// WorkspaceFolderTaskResult holds the tasks configured in one folder.
type WorkspaceFolderTaskResult struct {
	WorkspaceFolder string
	Tasks           []Task
	HasErrors       bool
}

// ProblemMatcherRunOptions tune problem matching for a run.
type ProblemMatcherRunOptions struct {
	AttachProblemMatcher bool
}

// TaskSystemInfo describes how a task system reaches its resources.
type TaskSystemInfo struct {
	Platform    string
	URIProvider func(path string) resource.URI
}

// TaskEvent is delivered when a task changes state.
type TaskEvent struct {
	Kind   string
	TaskID string
}

// Action is a user-invocable command.
type Action struct {
	ID    string
	Label string
}

// RecentTask is one entry of the recently-used list, newest first.
type RecentTask struct {
	Key   string
	Value string
}

// TaskSorter orders tasks for display.
type TaskSorter func(a, b Task) int

// TaskProvider contributes tasks of one type.
type TaskProvider interface {
	ProvideTasks(validTypes map[string]bool) *future.Future[[]Task]
	ResolveTask(task Task) *future.Future[*Task]
}

// Tasks runs and tracks workspace tasks.
type Tasks interface {
	OnDidStateChange() event.Event[TaskEvent]
	SupportsMultipleTaskExecutions() bool

	ConfigureAction() (Action, error)
	Build() *future.Future[TaskSummary]
	RunTest() *future.Future[TaskSummary]
	Run(task *Task, options ProblemMatcherRunOptions) *future.Future[*TaskSummary]
	InTerminal() bool
	IsActive() *future.Future[bool]
	GetActiveTasks() *future.Future[[]Task]
	GetBusyTasks() *future.Future[[]Task]
	Restart(task Task) error
	Terminate(task Task) *future.Future[TaskTerminateResponse]
	TerminateAll() *future.Future[[]TaskTerminateResponse]
	Tasks(filter *TaskFilter) *future.Future[[]Task]
	TaskTypes() []string
	GetWorkspaceTasks(runSource TaskRunSource) *future.Future[map[string]WorkspaceFolderTaskResult]
	ReadRecentTasks() *future.Future[[]Task]
	GetTask(workspaceFolder string, alias string, compareID bool) *future.Future[*Task]
	TryResolveTask(configuring Task) *future.Future[*Task]
	GetTasksForGroup(group string) *future.Future[[]Task]
	GetRecentlyUsedTasks() []RecentTask
	RemoveRecentlyUsedTask(key string) error
	MigrateRecentTasks(tasks []Task) *future.Future[struct{}]
	CreateSorter() (TaskSorter, error)
	GetTaskDescription(task Task) (string, error)
	CanCustomize(task Task) bool
	Customize(task Task, properties map[string]any, openConfig bool) *future.Future[struct{}]
	OpenConfig(task *Task) *future.Future[bool]
	RegisterTaskProvider(provider TaskProvider, taskType string) (event.Disposable, error)
	RegisterTaskSystem(scheme string, info TaskSystemInfo) error
	RegisterSupportedExecutions(custom, shell, process bool) error
	SetJSONTasksSupported(supported *future.Future[bool]) error
	ExtensionCallbackTaskComplete(task Task, result *int) *future.Future[struct{}]
}
