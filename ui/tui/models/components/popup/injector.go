// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/kvedit/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   util.Model
	onClose func(util.Model) tea.Cmd
}

// Injector renders its child and overlays the open popups on top of it.
// Only the topmost popup receives input.
type Injector struct {
	child  util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return m.child.Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				m.activeModel().Update(m.size.Shrink(reservedWidth, reservedHeight).ToMsg()),
				m.child.Update(msg),
			)
		}
		return m.child.Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		return m.activeModel().Update(msg)
	}

	// everything else (actions, restore messages, blinks) belongs to the
	// child as well as to an open popup
	if len(m.popups) > 0 {
		return tea.Batch(m.activeModel().Update(msg), m.child.Update(msg))
	}
	return m.child.Update(msg)
}

// IsOpen reports whether a popup is shown.
func (m Injector) IsOpen() bool {
	return len(m.popups) > 0
}

func (m *Injector) applyView(v1, v2 string) string {
	v1Width, v1Height := lipgloss.Size(v1)
	// limit v2 dimensions to v1
	v2 = lipgloss.NewStyle().MaxWidth(v1Width).MaxHeight(v1Height).Render(v2)
	v2Width, v2Height := lipgloss.Size(v2)

	offsetLeft := (v1Width - v2Width) / 2
	offsetTop := (v1Height - v2Height) / 2

	v1Lines := strings.Split(v1, "\n")
	v2Lines := strings.Split(v2, "\n")

	for i := range v2Lines {
		if i+offsetTop >= len(v1Lines) {
			break
		}
		left := ansi.Truncate(v1Lines[i+offsetTop], offsetLeft, "")
		left += strings.Repeat(" ", max(offsetLeft-ansi.StringWidth(left), 0))
		right := ansi.TruncateLeft(v1Lines[i+offsetTop], offsetLeft+v2Width, "")
		v1Lines[i+offsetTop] = left + v2Lines[i] + right
	}

	return strings.Join(v1Lines, "\n")
}

func (m Injector) View() string {
	childView := m.child.View()

	if len(m.popups) > 0 {
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			Margin(0, 1).
			Render(m.activeModel().View())

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return m.applyView(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return m.activeModel().Focus()
}

func (m *Injector) Blur() {
	m.activeModel().Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	m.activeModel().Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		p.model.Init(),
		util.FocusCmd(p.model),
		p.model.Update(m.size.Shrink(reservedWidth, reservedHeight).ToMsg()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	top := m.popups[len(m.popups)-1]
	top.model.Blur()
	m.popups = m.popups[:len(m.popups)-1]

	var onCloseCmd tea.Cmd
	if top.onClose != nil {
		onCloseCmd = top.onClose(top.model)
	}
	return tea.Batch(
		util.FocusCmd(m.activeModel()),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}
