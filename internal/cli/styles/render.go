package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PathRow is one resolved OS path.
type PathRow struct {
	Name string
	Path string
	Err  error
}

// StatusInfo is what the status command reports about a running host.
type StatusInfo struct {
	Address string
	Running bool
	Windows int
	Err     error
}

// Renderer renders command output with a theme.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderPaths renders resolved path names as a table. Failed lookups show the error.
func (r *Renderer) RenderPaths(rows []PathRow) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		value := row.Path
		if row.Err != nil {
			value = r.theme.ErrorStyle.Render(row.Err.Error())
		}
		data = append(data, []string{row.Name, value})
	}
	return r.theme.Table([]string{"Name", "Path"}, data)
}

// RenderSettings renders key/value pairs as a table.
func (r *Renderer) RenderSettings(keys []string, values map[string]string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("  no settings stored")
	}
	data := make([][]string, 0, len(keys))
	for _, k := range keys {
		data = append(data, []string{k, values[k]})
	}
	return r.theme.Table([]string{"Key", "Value"}, data)
}

// RenderStatus renders the reachability of a host.
func (r *Renderer) RenderStatus(info StatusInfo) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	if !info.Running {
		reason := "not running"
		if info.Err != nil {
			reason = info.Err.Error()
		}
		return fmt.Sprintf("\n  %s %s %s\n    %s\n",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Title.Render("hostd"),
			r.theme.Subtle.Render(info.Address),
			r.theme.ErrorStyle.Render(reason),
		)
	}

	return fmt.Sprintf("\n  %s %s %s\n  %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render("hostd"),
		r.theme.Subtle.Render(info.Address),
		iconStyle.Render(IconWindow),
		r.theme.MutedBadge(fmt.Sprintf("%d windows", info.Windows)),
	)
}

// RenderConfigInfo renders where the config file and data live.
func (r *Renderer) RenderConfigInfo(configFile string, dirs map[string]string, order []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(configFile)))
	for _, name := range order {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(IconFolder),
			r.theme.Normal.Render(name),
			r.theme.Subtle.Render(dirs[name]),
		))
	}
	return sb.String()
}

// RenderSuccess renders a one-line success message.
func (r *Renderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderError renders an error message.
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
