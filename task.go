package qhttp

import (
	"context"
	"runtime/debug"

	"github.com/ridge/parallel"
)

// runTask executes the task in the current goroutine, recovering from panics.
// A panic is returned as parallel.ErrPanic.
func runTask(ctx context.Context, task parallel.Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = parallel.ErrPanic{Value: p, Stack: debug.Stack()}
		}
	}()
	return task(ctx)
}
