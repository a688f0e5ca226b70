package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/application/port"
	portmocks "github.com/bnema/hostd/internal/application/port/mocks"
	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/domain/entity"
)

func newWindows(t *testing.T, n int) []port.Window {
	windows := make([]port.Window, n)
	for i := range windows {
		w := portmocks.NewMockWindow(t)
		w.EXPECT().ID().Return(port.WindowID(i + 1)).Maybe()
		windows[i] = w
	}
	return windows
}

func TestResolveWindowUseCase_FocusedWindowWins(t *testing.T) {
	for count := 1; count <= 4; count++ {
		for focused := 0; focused < count; focused++ {
			t.Run(fmt.Sprintf("%d_windows_focus_%d", count, focused), func(t *testing.T) {
				windows := newWindows(t, count)
				wm := portmocks.NewMockWindowManager(t)
				wm.EXPECT().FocusedWindow().Return(windows[focused], true)

				got, err := usecase.NewResolveWindowUseCase(wm).Execute(testContext())

				require.NoError(t, err)
				assert.Same(t, windows[focused], got)
				wm.AssertNotCalled(t, "Windows")
			})
		}
	}
}

func TestResolveWindowUseCase_FallsBackToFirstCreated(t *testing.T) {
	windows := newWindows(t, 3)
	wm := portmocks.NewMockWindowManager(t)
	wm.EXPECT().FocusedWindow().Return(nil, false)
	wm.EXPECT().Windows().Return(windows)

	got, err := usecase.NewResolveWindowUseCase(wm).Execute(testContext())

	require.NoError(t, err)
	assert.Same(t, windows[0], got)
}

func TestResolveWindowUseCase_NoWindows(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	wm.EXPECT().FocusedWindow().Return(nil, false)
	wm.EXPECT().Windows().Return(nil)

	got, err := usecase.NewResolveWindowUseCase(wm).Execute(testContext())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, entity.ErrNoWindowAvailable)
}
