package forth

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTasksInterleavesOnPause(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTaskCount(2))

	vm.SetCurrentTask(0)
	vm.SetSource(": step 65 emit pause 66 emit pause 67 emit ; step")
	vm.SetAwake(0, true)

	vm.SetCurrentTask(1)
	vm.SetSource(": step 88 emit pause 89 emit pause 90 emit ; step")
	vm.SetAwake(1, true)

	require.NoError(t, vm.RunTasks(context.Background()))
	require.Equal(t, "AXBYCZ", out.String(), "tasks must interleave one step at a time, in round-robin order")
}

func TestRunTasksStopsWhenAllTasksIdle(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTaskCount(1))
	vm.SetCurrentTask(0)
	vm.SetSource("1 2 +")
	vm.SetAwake(0, true)

	require.NoError(t, vm.RunTasks(context.Background()))
	require.Equal(t, []Cell{3}, dataStack(vm))
}

func TestRunTasksStopsOnBye(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTaskCount(1))
	vm.SetCurrentTask(0)
	vm.SetSource("1 bye 2")
	vm.SetAwake(0, true)

	require.NoError(t, vm.RunTasks(context.Background()))
	require.Equal(t, []Cell{1}, dataStack(vm), "bye must stop evaluation before the trailing 2")
}

func TestRunTasksRecoversFromAbortWithoutKillingTheTask(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTaskCount(1))
	vm.SetCurrentTask(0)
	vm.SetSource("1 2 abort")
	vm.SetAwake(0, true)

	require.NoError(t, vm.RunTasks(context.Background()))
	require.True(t, vm.CurrentTask().Data.IsEmpty())
	require.True(t, vm.Awake(0), "abort resets the task, it does not put it to sleep")
}

func TestRunTasksContextCancellation(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTaskCount(1))
	vm.SetCurrentTask(0)
	vm.SetSource(": forever begin pause again ; forever")
	vm.SetAwake(0, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := vm.RunTasks(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
