package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/application/port"
	portmocks "github.com/bnema/hostd/internal/application/port/mocks"
	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/domain/entity"
)

func newLifecycle(wm port.WindowManager) *usecase.WindowLifecycleUseCase {
	return usecase.NewWindowLifecycleUseCase(wm, usecase.NewResolveWindowUseCase(wm))
}

func TestWindowLifecycle_WindowReadyShowsSenderWindow(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	window := portmocks.NewMockWindow(t)
	window.EXPECT().ID().Return(port.WindowID(1)).Maybe()
	window.EXPECT().Show(mock.Anything).Return(nil).Once()
	wm.EXPECT().WindowForFrontend(port.FrontendID("fe-1")).Return(window, nil)

	newLifecycle(wm).WindowReady(testContext(), "fe-1")
}

func TestWindowLifecycle_WindowReadyResolutionFailureIsLogged(t *testing.T) {
	ctx, logs := capturingContext()
	wm := portmocks.NewMockWindowManager(t)
	wm.EXPECT().WindowForFrontend(port.FrontendID("gone")).Return(nil, errors.New("frontend not attached"))

	assert.NotPanics(t, func() {
		newLifecycle(wm).WindowReady(ctx, "gone")
	})

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), entity.ErrWindowResolution.Error())
}

func TestWindowLifecycle_WindowReadyShowFailureIsLogged(t *testing.T) {
	ctx, logs := capturingContext()
	wm := portmocks.NewMockWindowManager(t)
	window := portmocks.NewMockWindow(t)
	window.EXPECT().ID().Return(port.WindowID(2)).Maybe()
	window.EXPECT().Show(mock.Anything).Return(errors.New("window destroyed"))
	wm.EXPECT().WindowForFrontend(port.FrontendID("fe-2")).Return(window, nil)

	newLifecycle(wm).WindowReady(ctx, "fe-2")

	assert.Contains(t, logs.String(), "could not show window")
}

func TestWindowLifecycle_NewWindow(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	window := portmocks.NewMockWindow(t)
	window.EXPECT().ID().Return(port.WindowID(4))
	wm.EXPECT().CreateWindow(mock.Anything).Return(window, nil)

	got, err := newLifecycle(wm).NewWindow(testContext())

	require.NoError(t, err)
	assert.Same(t, window, got)
}

func TestWindowLifecycle_OpenFileTargetsCurrentWindow(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	window := portmocks.NewMockWindow(t)
	window.EXPECT().ID().Return(port.WindowID(9)).Maybe()
	window.EXPECT().Send(mock.Anything, usecase.FileDroppedEvent, "/tmp/report.pdf").Return(nil).Once()
	wm.EXPECT().FocusedWindow().Return(window, true)

	require.NoError(t, newLifecycle(wm).OpenFile(testContext(), "/tmp/report.pdf"))
}

func TestWindowLifecycle_OpenFileWithoutWindows(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	wm.EXPECT().FocusedWindow().Return(nil, false)
	wm.EXPECT().Windows().Return([]port.Window{})

	err := newLifecycle(wm).OpenFile(testContext(), "/tmp/report.pdf")

	assert.ErrorIs(t, err, entity.ErrNoWindowAvailable)
}
