package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"qtermreg/qsim"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusRegister focus = iota
	focusMenu
	focusSelectTarget
	focusInputParam
)

// Model represents the TUI application state. The qsim.State is the single
// source of truth: every accepted keypress mutates it immediately and the
// next View reads it back. There is no stored circuit, only a scrollback
// log of what has been applied.
type Model struct {
	state  *qsim.State
	logger zerolog.Logger

	numQubits   int
	cursorQubit int
	width       int
	height      int
	focus       focus
	statusMsg   string
	history     []string

	// Menu state
	menuCat  int
	menuItem int

	// Pending operation state (two-qubit target / rotation angle)
	pending      menuItem
	pendingTheta float64
	targetQubit  int
	paramInput   textinput.Model
}

func initialModel(logger zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "pi/2"
	ti.CharLimit = 24
	ti.Width = 20

	n := 4
	state, err := qsim.New(n)
	if err != nil {
		// n is a compile-time default well under the maximum.
		panic(err)
	}

	logger.Info().Int("qubits", n).Msg("session start")

	return Model{
		state:      state,
		logger:     logger,
		numQubits:  n,
		paramInput: ti,
	}
}

// pushHistory appends an operation description to the scrollback log.
func (m *Model) pushHistory(entry string) {
	m.history = append(m.history, entry)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// resize re-creates the register with a new qubit count. The state is
// discarded; a register explorer has no way to embed the old amplitudes in
// a differently-sized space.
func (m *Model) resize(n int) {
	state, err := qsim.New(n)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Cannot resize: %v", err)
		return
	}
	m.state = state
	m.numQubits = n
	if m.cursorQubit >= n {
		m.cursorQubit = n - 1
	}
	m.pushHistory(fmt.Sprintf("new register, %d qubits", n))
	m.logger.Info().Int("qubits", n).Msg("register resized")
	m.statusMsg = fmt.Sprintf("Register reset to %d qubits", n)
}

// gateLabel renders a human-readable description for the log panel.
func gateLabel(item menuItem, theta float64, qubits ...int) string {
	name := item.kind.String()
	if item.needsParam {
		name = fmt.Sprintf("%s(%s)", name, formatParam(theta))
	}
	switch len(qubits) {
	case 1:
		return fmt.Sprintf("%s q[%d]", name, qubits[0])
	default:
		return fmt.Sprintf("%s q[%d], q[%d]", name, qubits[0], qubits[1])
	}
}

// applyPending applies the pending gate to the register. target is ignored
// for single-qubit gates.
func (m *Model) applyPending(target int) {
	g := qsim.Gate{Kind: m.pending.kind, Theta: m.pendingTheta}

	var err error
	var label string
	if g.Arity() == 2 {
		err = m.state.Apply(g.Matrix(), m.cursorQubit, target)
		label = gateLabel(m.pending, m.pendingTheta, m.cursorQubit, target)
	} else {
		err = m.state.Apply(g.Matrix(), m.cursorQubit)
		label = gateLabel(m.pending, m.pendingTheta, m.cursorQubit)
	}
	if err != nil {
		m.statusMsg = fmt.Sprintf("Apply failed: %v", err)
		m.logger.Error().Err(err).Str("gate", label).Msg("apply rejected")
		return
	}
	m.pushHistory(label)
	m.logger.Info().Str("gate", label).Msg("gate applied")
}

// doMeasure measures the cursor qubit and collapses the register.
func (m *Model) doMeasure() {
	outcome, err := m.state.Measure(m.cursorQubit)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Measure failed: %v", err)
		return
	}
	m.pushHistory(fmt.Sprintf("measure q[%d] → %d", m.cursorQubit, outcome))
	m.logger.Info().Int("qubit", m.cursorQubit).Int("outcome", outcome).Msg("measured")
	m.statusMsg = fmt.Sprintf("q[%d] measured: %d", m.cursorQubit, outcome)
}

// doSample draws a full-register outcome without collapsing.
func (m *Model) doSample() {
	idx := m.state.Sample()
	m.pushHistory(fmt.Sprintf("sample → |%s⟩", ket(idx, m.numQubits)))
	m.logger.Info().Int("basis", idx).Msg("sampled")
	m.statusMsg = fmt.Sprintf("Sampled |%s⟩ (state unchanged)", ket(idx, m.numQubits))
}

// doReset forces the cursor qubit back to |0⟩.
func (m *Model) doReset() {
	if err := m.state.Reset(m.cursorQubit); err != nil {
		m.statusMsg = fmt.Sprintf("Reset failed: %v", err)
		return
	}
	m.pushHistory(fmt.Sprintf("reset q[%d]", m.cursorQubit))
	m.logger.Info().Int("qubit", m.cursorQubit).Msg("qubit reset")
}

// runMenuItem dispatches a confirmed menu selection.
func (m *Model) runMenuItem(item menuItem) {
	switch item.action {
	case actMeasure:
		m.doMeasure()
		m.focus = focusRegister
	case actSample:
		m.doSample()
		m.focus = focusRegister
	case actReset:
		m.doReset()
		m.focus = focusRegister
	case actResetAll:
		m.resize(m.numQubits)
		m.focus = focusRegister
	case actGate:
		m.pending = item
		m.pendingTheta = 0
		if item.needsParam {
			m.paramInput.SetValue("")
			m.paramInput.Placeholder = item.example
			m.paramInput.Focus()
			m.focus = focusInputParam
			return
		}
		m.startTargetOrApply()
	}
}

// startTargetOrApply either enters target selection (two-qubit gates) or
// applies the pending single-qubit gate right away.
func (m *Model) startTargetOrApply() {
	if m.pending.needsTarget {
		if m.numQubits < 2 {
			m.statusMsg = "Two-qubit gates need at least 2 qubits"
			m.focus = focusRegister
			return
		}
		m.targetQubit = m.cursorQubit + 1
		if m.targetQubit >= m.numQubits {
			m.targetQubit = m.cursorQubit - 1
		}
		m.focus = focusSelectTarget
		return
	}
	m.applyPending(-1)
	m.focus = focusRegister
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusRegister:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.numQubits-1 {
					m.cursorQubit++
				}
			case "+", "=":
				m.resize(m.numQubits + 1)
			case "-":
				if m.numQubits > 1 {
					m.resize(m.numQubits - 1)
				}
			case "a":
				m.focus = focusMenu
				m.menuCat = 0
				m.menuItem = 0
			case "m":
				m.doMeasure()
			case "s":
				m.doSample()
			case "r":
				m.doReset()
			case "ctrl+r":
				m.resize(m.numQubits)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusRegister
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				cat := opMenu[m.menuCat]
				if m.menuItem < len(cat.items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(opMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "enter":
				m.runMenuItem(opMenu[m.menuCat].items[m.menuItem])
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.focus = focusRegister
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.numQubits; next++ {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				m.applyPending(m.targetQubit)
				m.focus = focusRegister
			}

		case focusInputParam:
			switch key {
			case "esc":
				m.focus = focusRegister
				m.paramInput.Blur()
			case "enter":
				theta, ok := parseParamExpr(m.paramInput.Value())
				if !ok {
					m.statusMsg = "Invalid angle — use numbers or pi expressions (e.g. pi/2, 3*pi/4)"
					break
				}
				m.pendingTheta = theta
				m.paramInput.Blur()
				m.startTargetOrApply()
			default:
				var cmd tea.Cmd
				m.paramInput, cmd = m.paramInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	ampsWidth := m.width * 2 / 5
	registerWidth := m.width - ampsWidth - 4
	controlsHeight := 4
	logHeight := 8
	panelHeight := max(m.height-controlsHeight-logHeight-2, 8)

	registerPanel := m.renderRegisterPanel(registerWidth, panelHeight)

	// The right column shows the popup for the active mode in place of the
	// amplitude table.
	var rightPanel string
	switch m.focus {
	case focusMenu:
		rightPanel = m.renderMenu()
	case focusInputParam:
		rightPanel = m.renderParamInput()
	default:
		rightPanel = m.renderAmplitudePanel(ampsWidth, panelHeight)
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, registerPanel, rightPanel)
	logPanel := m.renderLogPanel(m.width-4, logHeight-2)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, logPanel, controlsPanel)
}
