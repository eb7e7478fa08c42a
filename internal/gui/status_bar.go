package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StatusLevel represents the type of status being displayed
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

// StatusBar shows the current page and the last warning or error.
type StatusBar struct {
	widget.BaseWidget

	mu      sync.RWMutex
	level   StatusLevel
	message string

	icon  *widget.Icon
	label *widget.Label
}

// NewStatusBar creates a new status bar with default "No page" message
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		level:   StatusInfo,
		message: "No page",
	}
	sb.label = widget.NewLabel(sb.message)
	sb.label.TextStyle = fyne.TextStyle{Italic: true}
	sb.icon = widget.NewIcon(theme.InfoIcon())
	sb.ExtendBaseWidget(sb)
	return sb
}

// SetStatus updates the status message and level. Safe to call from any goroutine.
func (sb *StatusBar) SetStatus(message string, level StatusLevel) {
	sb.mu.Lock()
	sb.level = level
	sb.message = message
	sb.mu.Unlock()

	fyne.Do(func() {
		sb.label.SetText(message)
		switch level {
		case StatusInfo:
			sb.icon.SetResource(theme.InfoIcon())
		case StatusWarning:
			sb.icon.SetResource(theme.WarningIcon())
		case StatusError:
			sb.icon.SetResource(theme.ErrorIcon())
		}
	})
}

// SetInfo is a convenience method for info-level status
func (sb *StatusBar) SetInfo(message string) {
	sb.SetStatus(message, StatusInfo)
}

// SetWarning is a convenience method for warning-level status
func (sb *StatusBar) SetWarning(message string) {
	sb.SetStatus(message, StatusWarning)
}

// SetError is a convenience method for error-level status
func (sb *StatusBar) SetError(message string) {
	sb.SetStatus(message, StatusError)
}

// GetMessage returns the current status message
func (sb *StatusBar) GetMessage() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.message
}

// GetLevel returns the current status level
func (sb *StatusBar) GetLevel() StatusLevel {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.level
}

// CreateRenderer implements fyne.Widget
func (sb *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(sb.icon, sb.label)
	return widget.NewSimpleRenderer(content)
}
