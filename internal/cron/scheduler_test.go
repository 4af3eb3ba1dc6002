package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingCompleter struct {
	calls atomic.Int32
	err   error
}

func (c *countingCompleter) CompleteFinished(ctx context.Context) (int, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("context without deadline")
	}
	return 1, c.err
}

func TestScheduler_RunsCompletionJob(t *testing.T) {
	s, err := NewScheduler(nopLogger{})
	require.NoError(t, err)

	completer := &countingCompleter{}
	require.NoError(t, s.AddCompletionJob(completer, 20*time.Millisecond, time.Second))

	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()

	assert.Eventually(t, func() bool { return completer.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_KeepsRunningAfterErrors(t *testing.T) {
	s, err := NewScheduler(nopLogger{})
	require.NoError(t, err)

	completer := &countingCompleter{err: errors.New("db down")}
	require.NoError(t, s.AddCompletionJob(completer, 20*time.Millisecond, 0))

	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()

	assert.Eventually(t, func() bool { return completer.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_InvalidInterval(t *testing.T) {
	s, err := NewScheduler(nopLogger{})
	require.NoError(t, err)
	defer func() { _ = s.Stop() }()

	assert.ErrorIs(t, s.AddCompletionJob(&countingCompleter{}, 0, time.Second), ErrInvalidInterval)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s, err := NewScheduler(nopLogger{})
	require.NoError(t, err)

	s.Start()
	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}
