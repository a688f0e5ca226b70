package entity

import "strings"

// MessageBoxType selects the icon and dialog flavor of a message box.
type MessageBoxType string

const (
	MessageBoxNone     MessageBoxType = "none"
	MessageBoxInfo     MessageBoxType = "info"
	MessageBoxError    MessageBoxType = "error"
	MessageBoxQuestion MessageBoxType = "question"
	MessageBoxWarning  MessageBoxType = "warning"
)

// MessageBoxOptions is the caller-supplied description of a native message box.
// The host forwards it to the dialog presenter without interpretation.
type MessageBoxOptions struct {
	Type            MessageBoxType `json:"type,omitempty" jsonschema:"enum=none,enum=info,enum=error,enum=question,enum=warning"`
	Buttons         []string       `json:"buttons,omitempty"`
	DefaultID       *int           `json:"defaultId,omitempty"`
	CancelID        *int           `json:"cancelId,omitempty"`
	Title           string         `json:"title,omitempty"`
	Message         string         `json:"message" jsonschema:"required"`
	Detail          string         `json:"detail,omitempty"`
	CheckboxLabel   string         `json:"checkboxLabel,omitempty"`
	CheckboxChecked bool           `json:"checkboxChecked,omitempty"`
}

// MessageBoxResult is the user's selection.
type MessageBoxResult struct {
	// Response is the index of the clicked button.
	Response        int  `json:"response"`
	CheckboxChecked bool `json:"checkboxChecked"`
}

// ButtonLabels returns the buttons to render, defaulting to a single "OK".
func (o MessageBoxOptions) ButtonLabels() []string {
	if len(o.Buttons) == 0 {
		return []string{"OK"}
	}
	return o.Buttons
}

// CancelIndex returns the button index reported when the dialog is dismissed.
// Without an explicit CancelID this is the first button labelled "cancel" or
// "no" (case-insensitive), falling back to 0.
func (o MessageBoxOptions) CancelIndex() int {
	index, _ := o.CancelButton()
	return index
}

// CancelButton is CancelIndex plus whether a cancel button was actually
// identified rather than defaulted.
func (o MessageBoxOptions) CancelButton() (int, bool) {
	buttons := o.ButtonLabels()
	if o.CancelID != nil && *o.CancelID >= 0 && *o.CancelID < len(buttons) {
		return *o.CancelID, true
	}
	for i, label := range buttons {
		switch strings.ToLower(strings.TrimSpace(label)) {
		case "cancel", "no":
			return i, true
		}
	}
	return 0, false
}
