// Package dialog renders message boxes with the desktop's native dialog tool.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

// backend is the subset of zenity the presenter drives.
type backend interface {
	Message(kind entity.MessageBoxType, text string, options ...zenity.Option) error
	Question(text string, options ...zenity.Option) error
	List(text string, items []string, options ...zenity.Option) (string, error)
}

type zenityBackend struct{}

func (zenityBackend) Message(kind entity.MessageBoxType, text string, options ...zenity.Option) error {
	switch kind {
	case entity.MessageBoxError:
		return zenity.Error(text, options...)
	case entity.MessageBoxWarning:
		return zenity.Warning(text, options...)
	case entity.MessageBoxNone:
		return zenity.Info(text, append(options, zenity.NoIcon)...)
	default:
		return zenity.Info(text, options...)
	}
}

func (zenityBackend) Question(text string, options ...zenity.Option) error {
	return zenity.Question(text, options...)
}

func (zenityBackend) List(text string, items []string, options ...zenity.Option) (string, error) {
	return zenity.List(text, items, options...)
}

// Presenter implements port.DialogPresenter.
type Presenter struct {
	backend backend
}

var _ port.DialogPresenter = (*Presenter)(nil)

// New creates a presenter backed by zenity.
func New() *Presenter {
	return &Presenter{backend: zenityBackend{}}
}

// ShowMessageBox blocks until the user answers and returns the chosen button index.
// Closing the dialog selects the cancel button.
func (p *Presenter) ShowMessageBox(ctx context.Context, options entity.MessageBoxOptions) (entity.MessageBoxResult, error) {
	log := logging.FromContext(ctx)

	buttons := options.ButtonLabels()
	text := messageText(options)
	common := []zenity.Option{zenity.Context(ctx)}
	if options.Title != "" {
		common = append(common, zenity.Title(options.Title))
	}
	if icon, ok := iconFor(options.Type); ok {
		common = append(common, icon)
	}

	var (
		response int
		err      error
	)
	switch {
	case len(buttons) == 1:
		response, err = p.single(options, text, buttons, common)
	case len(buttons) <= 3:
		response, err = p.question(options, text, buttons, common)
	default:
		response, err = p.list(options, text, buttons, common)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.MessageBoxResult{}, ctxErr
		}
		return entity.MessageBoxResult{}, fmt.Errorf("message box: %w", err)
	}

	log.Debug().Int("response", response).Str("button", buttons[response]).Msg("message box closed")
	return entity.MessageBoxResult{
		Response:        response,
		CheckboxChecked: options.CheckboxChecked,
	}, nil
}

func (p *Presenter) single(options entity.MessageBoxOptions, text string, buttons []string, common []zenity.Option) (int, error) {
	err := p.backend.Message(options.Type, text, append(common, zenity.OKLabel(buttons[0]))...)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		return 0, err
	}
	return 0, nil
}

// question maps two or three buttons onto zenity's OK, extra and cancel buttons.
func (p *Presenter) question(options entity.MessageBoxOptions, text string, buttons []string, common []zenity.Option) (int, error) {
	cancel, found := options.CancelButton()
	if !found {
		cancel = len(buttons) - 1
	}

	rest := make([]int, 0, 2)
	for i := range buttons {
		if i != cancel {
			rest = append(rest, i)
		}
	}
	ok := rest[0]

	opts := append(common,
		zenity.OKLabel(buttons[ok]),
		zenity.CancelLabel(buttons[cancel]),
	)
	extra := -1
	if len(rest) > 1 {
		extra = rest[1]
		opts = append(opts, zenity.ExtraButton(buttons[extra]))
	}
	if options.DefaultID != nil && *options.DefaultID == cancel {
		opts = append(opts, zenity.DefaultCancel())
	}

	err := p.backend.Question(text, opts...)
	switch {
	case err == nil:
		return ok, nil
	case errors.Is(err, zenity.ErrExtraButton) && extra >= 0:
		return extra, nil
	case errors.Is(err, zenity.ErrCanceled):
		return cancel, nil
	default:
		return 0, err
	}
}

func (p *Presenter) list(options entity.MessageBoxOptions, text string, buttons []string, common []zenity.Option) (int, error) {
	choice, err := p.backend.List(text, buttons, common...)
	if errors.Is(err, zenity.ErrCanceled) {
		return options.CancelIndex(), nil
	}
	if err != nil {
		return 0, err
	}
	for i, label := range buttons {
		if label == choice {
			return i, nil
		}
	}
	return options.CancelIndex(), nil
}

func messageText(options entity.MessageBoxOptions) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{options.Message, options.Detail} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if options.CheckboxLabel != "" {
		state := "off"
		if options.CheckboxChecked {
			state = "on"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", state, options.CheckboxLabel))
	}
	return strings.Join(parts, "\n\n")
}

func iconFor(kind entity.MessageBoxType) (zenity.Option, bool) {
	switch kind {
	case entity.MessageBoxInfo:
		return zenity.InfoIcon, true
	case entity.MessageBoxError:
		return zenity.ErrorIcon, true
	case entity.MessageBoxWarning:
		return zenity.WarningIcon, true
	case entity.MessageBoxQuestion:
		return zenity.QuestionIcon, true
	default:
		return nil, false
	}
}
