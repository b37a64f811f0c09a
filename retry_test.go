package mdrsort

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_SucceedsAfterTransient(t *testing.T) {
	var slept []time.Duration
	calls := 0
	err := RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second}.Do(
		func(d time.Duration) { slept = append(slept, d) },
		nil,
		func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("open: %w", &lockedError{fs.ErrPermission})
			}
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, slept)
}

func TestRetryPolicy_Exhausted(t *testing.T) {
	calls, retries := 0, 0
	err := RetryPolicy{MaxAttempts: 3, Delay: time.Second}.Do(
		func(time.Duration) {},
		func(int, error) { retries++ },
		func() error {
			calls++
			return &lockedError{fs.ErrPermission}
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retries)
}

func TestRetryPolicy_NonTransientStopsImmediately(t *testing.T) {
	boom := errors.New("corrupt")
	calls := 0
	err := DefaultRetryPolicy.Do(func(time.Duration) { t.Fatal("must not sleep") }, nil, func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_WritePermissionNotRetried(t *testing.T) {
	calls := 0
	err := DefaultRetryPolicy.Do(func(time.Duration) { t.Fatal("must not sleep") }, nil, func() error {
		calls++
		return &fs.PathError{Op: "write", Path: "out.xlsx", Err: fs.ErrPermission}
	})
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_RealTimerWhenNoSleep(t *testing.T) {
	calls := 0
	err := RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond}.Do(nil, nil, func() error {
		calls++
		if calls == 1 {
			return &lockedError{fs.ErrPermission}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&lockedError{fs.ErrPermission}))
	assert.True(t, IsTransient(fmt.Errorf("read %q: %w", "x", &lockedError{fs.ErrPermission})))
	assert.False(t, IsTransient(fs.ErrPermission), "unmarked permission errors come from writes")
	assert.False(t, IsTransient(&fs.PathError{Op: "remove", Path: "x", Err: fs.ErrPermission}))
	assert.False(t, IsTransient(fs.ErrNotExist))
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("zip: not a valid zip file")))
}

func TestLooksLocked(t *testing.T) {
	assert.True(t, looksLocked(fs.ErrPermission))
	assert.True(t, looksLocked(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}))
	assert.False(t, looksLocked(fs.ErrNotExist))
	assert.False(t, looksLocked(errors.New("zip: not a valid zip file")))
}
