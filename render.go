package main

import (
	"fmt"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// ket renders a basis index as a bit string with qubit 0 leftmost, the
// textbook ordering for |q0 q1 …⟩.
func ket(index, numQubits int) string {
	bits := make([]byte, numQubits)
	for q := 0; q < numQubits; q++ {
		if index&(1<<q) != 0 {
			bits[q] = '1'
		} else {
			bits[q] = '0'
		}
	}
	return string(bits)
}

// formatAmp renders a complex amplitude in fixed width.
func formatAmp(a complex128) string {
	return fmt.Sprintf("%+.3f%+.3fi", real(a), imag(a))
}

// probBar renders a probability as a filled bar of width w.
func probBar(p float64, w int) string {
	filled := int(p*float64(w) + 0.5)
	if filled > w {
		filled = w
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("·", w-filled))
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderRegisterPanel renders one wire per qubit with its marginal P(1).
func (m Model) renderRegisterPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Register"))
	sb.WriteString("\n\n")

	probs := m.state.QubitProbabilities()
	for qubit := 0; qubit < m.numQubits; qubit++ {
		label := fmt.Sprintf("q[%d]", qubit)
		switch {
		case qubit == m.cursorQubit && m.focus == focusSelectTarget:
			sb.WriteString(activeStyle.Render(fmt.Sprintf("%-*s", labelW, label+"●")))
		case qubit == m.targetQubit && m.focus == focusSelectTarget:
			sb.WriteString(targetSelectStyle.Render(fmt.Sprintf("%-*s", labelW, label+"◎")))
		case qubit == m.cursorQubit:
			sb.WriteString(cursorStyle.Render(fmt.Sprintf("%-*s", labelW, "▸"+label)))
		default:
			sb.WriteString(qubitLabelStyle.Render(fmt.Sprintf("%-*s", labelW, label)))
		}

		sb.WriteString("──")
		sb.WriteString(probBar(probs[qubit].Prob1, probBarW))
		fmt.Fprintf(&sb, "  P(1)=%.3f", probs[qubit].Prob1)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.focus == focusSelectTarget {
		fmt.Fprintf(&sb, "  %s", activeStyle.Render(m.pending.kind.String()))
		sb.WriteString("  Select target qubit: ")
		fmt.Fprintf(&sb, "%s", targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "  %d qubits, norm %.6f", m.numQubits, m.state.Norm())
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", outcomeStyle.Render(m.statusMsg))
		}
	}

	return registerStyle.Width(width).Height(height).Render(sb.String())
}

// renderAmplitudePanel renders the basis states currently carrying weight.
func (m Model) renderAmplitudePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Amplitudes"))
	sb.WriteString("\n\n")

	header := fmt.Sprintf("  %-*s %-16s %-8s %s", m.numQubits+2, "basis", "amplitude", "prob", "phase")
	sb.WriteString(dimStyle.Render(header))
	sb.WriteString("\n")

	states := m.state.Nonzero()
	maxRows := max(height-6, 1)
	for i, st := range states {
		if i >= maxRows {
			fmt.Fprintf(&sb, "  %s\n", dimStyle.Render(fmt.Sprintf("… %d more", len(states)-maxRows)))
			break
		}
		sb.WriteString("  ")
		sb.WriteString(ketStyle.Render(fmt.Sprintf("|%s⟩", ket(st.Index, m.numQubits))))
		fmt.Fprintf(&sb, " %-16s %.4f  %+.3f\n", formatAmp(st.Amplitude), st.Probability, st.Phase)
	}

	return ampsStyle.Width(width).Height(height).Render(sb.String())
}

// renderLogPanel renders the scrollback of applied operations.
func (m Model) renderLogPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Operations"))
	sb.WriteString("\n")

	rows := max(height-1, 1)
	start := max(len(m.history)-rows, 0)
	if len(m.history) == 0 {
		sb.WriteString(dimStyle.Render("  (none yet — press 'a' to apply a gate)"))
	}
	for i := start; i < len(m.history); i++ {
		fmt.Fprintf(&sb, "  %3d. %s\n", i+1, m.history[i])
	}

	return logStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Move qubit  +/- Resize register")
	sb.WriteString("    ")
	sb.WriteString(activeStyle.Render("a"))
	sb.WriteString(" Apply gate\n")

	sb.WriteString(activeStyle.Render("Actions:  "))
	sb.WriteString("m Measure  s Sample  r Reset qubit  ^R Reset register  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// renderParamInput renders the rotation-angle input popup.
func (m Model) renderParamInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s — Rotation Angle", m.pending.kind)))
	sb.WriteString("\n\n")
	sb.WriteString(m.paramInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: pi/2, 3*pi/4, 1.57   ⏎ Ok  Esc ✕"))
	return menuBorderStyle.Render(sb.String())
}
