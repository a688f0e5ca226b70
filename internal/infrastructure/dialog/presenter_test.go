package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeBackend struct {
	messageErr  error
	questionErr error
	listChoice  string
	listErr     error

	lastText  string
	lastItems []string
	calls     []string
}

func (f *fakeBackend) Message(_ entity.MessageBoxType, text string, _ ...zenity.Option) error {
	f.calls = append(f.calls, "message")
	f.lastText = text
	return f.messageErr
}

func (f *fakeBackend) Question(text string, _ ...zenity.Option) error {
	f.calls = append(f.calls, "question")
	f.lastText = text
	return f.questionErr
}

func (f *fakeBackend) List(text string, items []string, _ ...zenity.Option) (string, error) {
	f.calls = append(f.calls, "list")
	f.lastText = text
	f.lastItems = items
	return f.listChoice, f.listErr
}

func intPtr(i int) *int { return &i }

func TestPresenter_SingleButton(t *testing.T) {
	fake := &fakeBackend{messageErr: zenity.ErrCanceled}
	p := &Presenter{backend: fake}

	got, err := p.ShowMessageBox(testContext(), entity.MessageBoxOptions{
		Type:    entity.MessageBoxInfo,
		Message: "Saved",
		Detail:  "All changes written.",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, got.Response)
	assert.Equal(t, []string{"message"}, fake.calls)
	assert.Equal(t, "Saved\n\nAll changes written.", fake.lastText)
}

func TestPresenter_QuestionButtons(t *testing.T) {
	tests := []struct {
		name    string
		buttons []string
		cancel  *int
		result  error
		want    int
	}{
		{name: "ok of two", buttons: []string{"Yes", "No"}, result: nil, want: 0},
		{name: "cancel of two", buttons: []string{"Yes", "No"}, result: zenity.ErrCanceled, want: 1},
		{name: "cancel detected by label", buttons: []string{"Cancel", "Delete"}, result: zenity.ErrCanceled, want: 0},
		{name: "ok when cancel is first", buttons: []string{"Cancel", "Delete"}, result: nil, want: 1},
		{name: "extra of three", buttons: []string{"Save", "Don't Save", "Cancel"}, result: zenity.ErrExtraButton, want: 1},
		{name: "cancel of three", buttons: []string{"Save", "Don't Save", "Cancel"}, result: zenity.ErrCanceled, want: 2},
		{name: "explicit cancel id", buttons: []string{"Abort", "Retry", "Ignore"}, cancel: intPtr(0), result: zenity.ErrCanceled, want: 0},
		{name: "ok with explicit cancel id", buttons: []string{"Abort", "Retry", "Ignore"}, cancel: intPtr(0), result: nil, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBackend{questionErr: tt.result}
			p := &Presenter{backend: fake}

			got, err := p.ShowMessageBox(testContext(), entity.MessageBoxOptions{
				Type:     entity.MessageBoxQuestion,
				Message:  "Proceed?",
				Buttons:  tt.buttons,
				CancelID: tt.cancel,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Response)
			assert.Equal(t, []string{"question"}, fake.calls)
		})
	}
}

func TestPresenter_ManyButtonsUseList(t *testing.T) {
	fake := &fakeBackend{listChoice: "Three"}
	p := &Presenter{backend: fake}
	buttons := []string{"One", "Two", "Three", "Four"}

	got, err := p.ShowMessageBox(testContext(), entity.MessageBoxOptions{Message: "Pick", Buttons: buttons})

	require.NoError(t, err)
	assert.Equal(t, 2, got.Response)
	assert.Equal(t, buttons, fake.lastItems)

	fake.listErr = zenity.ErrCanceled
	got, err = p.ShowMessageBox(testContext(), entity.MessageBoxOptions{Message: "Pick", Buttons: buttons, CancelID: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Response)
}

func TestPresenter_CheckboxIsEchoed(t *testing.T) {
	fake := &fakeBackend{}
	p := &Presenter{backend: fake}

	got, err := p.ShowMessageBox(testContext(), entity.MessageBoxOptions{
		Message:         "Update available",
		CheckboxLabel:   "Don't ask again",
		CheckboxChecked: true,
	})

	require.NoError(t, err)
	assert.True(t, got.CheckboxChecked)
	assert.Contains(t, fake.lastText, "[on] Don't ask again")
}

func TestPresenter_BackendFailure(t *testing.T) {
	fake := &fakeBackend{questionErr: errors.New("no display")}
	p := &Presenter{backend: fake}

	_, err := p.ShowMessageBox(testContext(), entity.MessageBoxOptions{Message: "?", Buttons: []string{"A", "B"}})

	assert.ErrorContains(t, err, "no display")
}
