package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/voucher/pkg/job"
)

func TestRunner(t *testing.T) {
	t.Parallel()

	var (
		ok       atomic.Int32
		failing  atomic.Int32
		panicked atomic.Int32
		disabled atomic.Int32
	)

	ctx, cancel := context.WithCancel(context.Background())

	r := job.NewRunner().
		Register("ok", 10*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		Register("failing", 10*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		Register("panicking", 10*time.Millisecond, func(context.Context) error {
			panicked.Add(1)
			panic("boom")
		}).
		TryRegister(false, "disabled", 10*time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	r.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicked.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	r.Wait()

	require.Zero(t, disabled.Load())
}
