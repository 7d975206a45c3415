package standin

import (
	"sandboxenv/internal/capability"
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
)

// Tasks has no task system behind it. Listing queries answer "no tasks";
// anything that would run, stop, configure or register tasks fails.
type Tasks struct{}

var _ capability.Tasks = (*Tasks)(nil)

// NewTasks returns the task stand-in.
func NewTasks() *Tasks {
	return &Tasks{}
}

func notImplemented(op string) error {
	return capability.NotImplemented(capability.TaskService, op)
}

func failed[T any](op string) *future.Future[T] {
	return future.Failed[T](notImplemented(op))
}

func (*Tasks) OnDidStateChange() event.Event[capability.TaskEvent] {
	return event.None[capability.TaskEvent]()
}

func (*Tasks) SupportsMultipleTaskExecutions() bool { return false }

func (*Tasks) ConfigureAction() (capability.Action, error) {
	return capability.Action{}, notImplemented("configureAction")
}

func (*Tasks) Build() *future.Future[capability.TaskSummary] {
	return failed[capability.TaskSummary]("build")
}

func (*Tasks) RunTest() *future.Future[capability.TaskSummary] {
	return failed[capability.TaskSummary]("runTest")
}

func (*Tasks) Run(*capability.Task, capability.ProblemMatcherRunOptions) *future.Future[*capability.TaskSummary] {
	return failed[*capability.TaskSummary]("run")
}

func (*Tasks) InTerminal() bool { return false }

func (*Tasks) IsActive() *future.Future[bool] {
	return future.Resolved(false)
}

func (*Tasks) GetActiveTasks() *future.Future[[]capability.Task] {
	return future.Resolved([]capability.Task{})
}

func (*Tasks) GetBusyTasks() *future.Future[[]capability.Task] {
	return future.Resolved([]capability.Task{})
}

func (*Tasks) Restart(capability.Task) error {
	return notImplemented("restart")
}

func (*Tasks) Terminate(capability.Task) *future.Future[capability.TaskTerminateResponse] {
	return failed[capability.TaskTerminateResponse]("terminate")
}

func (*Tasks) TerminateAll() *future.Future[[]capability.TaskTerminateResponse] {
	return failed[[]capability.TaskTerminateResponse]("terminateAll")
}

func (*Tasks) Tasks(*capability.TaskFilter) *future.Future[[]capability.Task] {
	return future.Resolved([]capability.Task{})
}

func (*Tasks) TaskTypes() []string { return []string{} }

func (*Tasks) GetWorkspaceTasks(capability.TaskRunSource) *future.Future[map[string]capability.WorkspaceFolderTaskResult] {
	return future.Resolved(map[string]capability.WorkspaceFolderTaskResult{})
}

func (*Tasks) ReadRecentTasks() *future.Future[[]capability.Task] {
	return future.Resolved([]capability.Task{})
}

// GetTask finds nothing: there are no tasks to match the alias against.
func (*Tasks) GetTask(string, string, bool) *future.Future[*capability.Task] {
	return future.Resolved[*capability.Task](nil)
}

func (*Tasks) TryResolveTask(capability.Task) *future.Future[*capability.Task] {
	return failed[*capability.Task]("tryResolveTask")
}

func (*Tasks) GetTasksForGroup(string) *future.Future[[]capability.Task] {
	return future.Resolved([]capability.Task{})
}

func (*Tasks) GetRecentlyUsedTasks() []capability.RecentTask {
	return []capability.RecentTask{}
}

func (*Tasks) RemoveRecentlyUsedTask(string) error {
	return notImplemented("removeRecentlyUsedTask")
}

func (*Tasks) MigrateRecentTasks([]capability.Task) *future.Future[struct{}] {
	return failed[struct{}]("migrateRecentTasks")
}

func (*Tasks) CreateSorter() (capability.TaskSorter, error) {
	return nil, notImplemented("createSorter")
}

func (*Tasks) GetTaskDescription(capability.Task) (string, error) {
	return "", notImplemented("getTaskDescription")
}

func (*Tasks) CanCustomize(capability.Task) bool { return false }

func (*Tasks) Customize(capability.Task, map[string]any, bool) *future.Future[struct{}] {
	return failed[struct{}]("customize")
}

func (*Tasks) OpenConfig(*capability.Task) *future.Future[bool] {
	return failed[bool]("openConfig")
}

func (*Tasks) RegisterTaskProvider(capability.TaskProvider, string) (event.Disposable, error) {
	return nil, notImplemented("registerTaskProvider")
}

func (*Tasks) RegisterTaskSystem(string, capability.TaskSystemInfo) error {
	return notImplemented("registerTaskSystem")
}

func (*Tasks) RegisterSupportedExecutions(bool, bool, bool) error {
	return notImplemented("registerSupportedExecutions")
}

func (*Tasks) SetJSONTasksSupported(*future.Future[bool]) error {
	return notImplemented("setJsonTasksSupported")
}

func (*Tasks) ExtensionCallbackTaskComplete(capability.Task, *int) *future.Future[struct{}] {
	return failed[struct{}]("extensionCallbackTaskComplete")
}
