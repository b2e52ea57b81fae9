package main

import (
	"fmt"
	"strings"

	"qtermreg/qsim"
)

// itemAction says what selecting a menu item does to the register.
type itemAction int

const (
	actGate itemAction = iota
	actMeasure
	actSample
	actReset
	actResetAll
)

// menuItem represents a single choice in the operation menu.
type menuItem struct {
	name        string
	action      itemAction
	kind        qsim.GateKind
	symbol      string
	needsTarget bool
	needsParam  bool
	example     string
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// opMenu defines the operation picker categories and items. Gate items are
// restricted to the closed qsim catalog.
var opMenu = []menuCategory{
	{
		name: "Single Qubit",
		items: []menuItem{
			{name: "Hadamard", kind: qsim.GateH, symbol: "H"},
			{name: "Pauli-X (NOT)", kind: qsim.GateX, symbol: "X"},
			{name: "Pauli-Y", kind: qsim.GateY, symbol: "Y"},
			{name: "Pauli-Z", kind: qsim.GateZ, symbol: "Z"},
			{name: "Phase (S)", kind: qsim.GateS, symbol: "S"},
			{name: "Phase Dagger (S†)", kind: qsim.GateSdg, symbol: "S†"},
			{name: "T Gate", kind: qsim.GateT, symbol: "T"},
			{name: "T Dagger (T†)", kind: qsim.GateTdg, symbol: "T†"},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "Rotate X", kind: qsim.GateRX, symbol: "RX", needsParam: true, example: "pi/2"},
			{name: "Rotate Y", kind: qsim.GateRY, symbol: "RY", needsParam: true, example: "pi/2"},
			{name: "Rotate Z", kind: qsim.GateRZ, symbol: "RZ", needsParam: true, example: "pi/2"},
		},
	},
	{
		name: "Two Qubit",
		items: []menuItem{
			{name: "CNOT", kind: qsim.GateCX, symbol: "●─⊕", needsTarget: true},
			{name: "Controlled-Y", kind: qsim.GateCY, symbol: "●─Y", needsTarget: true},
			{name: "Controlled-Z", kind: qsim.GateCZ, symbol: "●─●", needsTarget: true},
			{name: "Controlled-H", kind: qsim.GateCH, symbol: "●─H", needsTarget: true},
			{name: "SWAP", kind: qsim.GateSwap, symbol: "×─×", needsTarget: true},
			{name: "C-Rotate X", kind: qsim.GateCRX, symbol: "●─RX", needsTarget: true, needsParam: true, example: "pi/2"},
			{name: "C-Rotate Y", kind: qsim.GateCRY, symbol: "●─RY", needsTarget: true, needsParam: true, example: "pi/2"},
			{name: "C-Rotate Z", kind: qsim.GateCRZ, symbol: "●─RZ", needsTarget: true, needsParam: true, example: "pi/2"},
		},
	},
	{
		name: "Measure",
		items: []menuItem{
			{name: "Measure qubit", action: actMeasure, symbol: "M"},
			{name: "Sample register", action: actSample, symbol: "⚄"},
			{name: "Reset qubit", action: actReset, symbol: "|0⟩"},
			{name: "Reset register", action: actResetAll, symbol: "|0…0⟩"},
		},
	},
}

// renderMenu renders the operation-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Apply Operation"))
	sb.WriteString("\n")

	// Category tabs
	for i, cat := range opMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(activeStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if i < len(opMenu)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 44)))
	sb.WriteString("\n")

	// Items in the selected category
	cat := opMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(ketStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.needsTarget {
			sb.WriteString(dimStyle.Render(" →target"))
		}
		if item.needsParam {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.example)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
