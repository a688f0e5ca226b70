package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/hostd/internal/application/port/mocks"
	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/domain/entity"
)

func TestPathBridge_PassesEveryNameThrough(t *testing.T) {
	provider := portmocks.NewMockPathProvider(t)
	bridge := usecase.NewPathBridge(provider)

	for _, name := range entity.AllPathNames() {
		want := "/stub/" + name.String()
		provider.EXPECT().ResolvePath(mock.Anything, name).Return(want, nil).Once()

		got, err := bridge.Resolve(testContext(), name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPathBridge_PropagatesProviderError(t *testing.T) {
	provider := portmocks.NewMockPathProvider(t)
	provider.EXPECT().ResolvePath(mock.Anything, entity.PathName("not-a-real-name")).
		Return("", entity.ErrUnknownPathName)

	_, err := usecase.NewPathBridge(provider).Resolve(testContext(), "not-a-real-name")

	assert.ErrorIs(t, err, entity.ErrUnknownPathName)
}

func TestSettingsBridge_RelaysVerbatim(t *testing.T) {
	store := portmocks.NewMockSettingsStore(t)
	bridge := usecase.NewSettingsBridge(store)

	store.EXPECT().SetItem(mock.Anything, "theme", "dark").Return(nil)
	store.EXPECT().GetItem(mock.Anything, "theme").Return("dark", nil)
	store.EXPECT().GetItem(mock.Anything, "missing").Return(nil, nil)

	require.NoError(t, bridge.Set(testContext(), "theme", "dark"))

	got, err := bridge.Get(testContext(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	absent, err := bridge.Get(testContext(), "missing")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestSettingsBridge_StoreFailure(t *testing.T) {
	store := portmocks.NewMockSettingsStore(t)
	diskErr := errors.New("disk full")
	store.EXPECT().SetItem(mock.Anything, "k", 1).Return(diskErr)

	err := usecase.NewSettingsBridge(store).Set(testContext(), "k", 1)

	assert.ErrorIs(t, err, diskErr)
}

func TestDialogBridge_ReturnsSelection(t *testing.T) {
	presenter := portmocks.NewMockDialogPresenter(t)
	opts := entity.MessageBoxOptions{Type: entity.MessageBoxQuestion, Message: "Quit?", Buttons: []string{"Yes", "No"}}
	presenter.EXPECT().ShowMessageBox(mock.Anything, opts).Return(entity.MessageBoxResult{Response: 1}, nil)

	got, err := usecase.NewDialogBridge(presenter).ShowMessageBox(testContext(), opts)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Response)
}

func TestDialogBridge_PropagatesFailure(t *testing.T) {
	presenter := portmocks.NewMockDialogPresenter(t)
	presenter.EXPECT().ShowMessageBox(mock.Anything, mock.Anything).
		Return(entity.MessageBoxResult{}, errors.New("no display"))

	_, err := usecase.NewDialogBridge(presenter).ShowMessageBox(testContext(), entity.MessageBoxOptions{Message: "hi"})

	assert.EqualError(t, err, "no display")
}
