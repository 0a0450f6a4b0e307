package command_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
	"github.com/HenrikBaltazar/linked-list-graph/internal/service"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return l
}

func TestRegister_Validation(t *testing.T) {
	r := command.NewRegistry(testLogger())
	noop := func(context.Context) (any, error) { return nil, nil }

	assert.ErrorIs(t, r.Register("", noop), command.ErrInvalidCommand)
	assert.ErrorIs(t, r.Register("x", nil), command.ErrInvalidCommand)

	require.NoError(t, r.Register("x", noop))
	assert.ErrorIs(t, r.Register("x", noop), command.ErrDuplicateCommand)
}

func TestNames_Sorted(t *testing.T) {
	r := command.NewRegistry(testLogger())
	noop := func(context.Context) (any, error) { return nil, nil }

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(name, noop))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestInvoke_Unknown(t *testing.T) {
	r := command.NewRegistry(testLogger())

	_, err := r.Invoke(context.Background(), "missing")
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestInvoke_HandlerError(t *testing.T) {
	r := command.NewRegistry(testLogger())
	cause := errors.New("boom")
	require.NoError(t, r.Register("fail", func(context.Context) (any, error) { return nil, cause }))

	_, err := r.Invoke(context.Background(), "fail")
	assert.ErrorIs(t, err, command.ErrInvocationFailed)
	assert.ErrorIs(t, err, cause)
}

func TestInstall_GetGraph(t *testing.T) {
	r := command.NewRegistry(testLogger())
	require.NoError(t, command.Install(r, service.NewGraphService(testLogger())))

	assert.Equal(t, []string{command.GetGraph}, r.Names())

	result, err := r.Invoke(context.Background(), command.GetGraph)
	require.NoError(t, err)

	snap, ok := result.(*models.Snapshot)
	require.True(t, ok, "expected *models.Snapshot, got %T", result)
	assert.Equal(t, map[int][]int{
		0: {1, 4},
		1: {0, 2, 3},
		2: {1, 3},
		3: {1, 2},
		4: {0, 1, 3},
	}, snap.Adj)

	assert.ErrorIs(t, command.Install(r, service.NewGraphService(testLogger())), command.ErrDuplicateCommand)
}

func TestInvoke_Concurrent(t *testing.T) {
	r := command.NewRegistry(testLogger())
	require.NoError(t, command.Install(r, service.NewGraphService(testLogger())))

	var wg sync.WaitGroup

	errs := make(chan error, 32)
	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := r.Invoke(context.Background(), command.GetGraph)
			if err != nil {
				errs <- err

				return
			}

			if snap := result.(*models.Snapshot); len(snap.Adj) != 5 {
				errs <- errors.New("incomplete snapshot")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
