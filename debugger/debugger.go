// Package debugger is a bubbletea TUI inspector that single-steps a
// cpu.Machine and renders its register file, flags, and a memory page.
package debugger

import (
	"fmt"

	"gbcore/cpu"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Bold(true)
)

// Model is the bubbletea model driving a single-stepped inspection session.
type Model struct {
	machine  *cpu.Machine
	lastErr  error
	lastStep string
	quitting bool
}

// New wraps a machine for interactive single-stepping. Debug(machine) is
// the usual entry point; New is exposed for tests that need the bare model.
func New(m *cpu.Machine) Model {
	return Model{machine: m}
}

// Debug runs the inspector program to completion (until the user quits).
func Debug(m *cpu.Machine) error {
	p := tea.NewProgram(New(m))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "n", " ":
			pc := m.machine.Reg.PC
			err := m.machine.Step()
			m.lastErr = err
			m.lastStep = fmt.Sprintf("stepped from %#04x", pc)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		statusStyle.Render("gbcore inspector — n: step, q: quit"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.registerPanel(), m.memoryPanel()),
		m.statusLine(),
	)
}

func (m Model) registerPanel() string {
	r := m.machine.Reg
	body := fmt.Sprintf(
		"A  %02X   F  %02X\nB  %02X   C  %02X\nD  %02X   E  %02X\nH  %02X   L  %02X\nSP %04X\nPC %04X\n\nZ%d N%d H%d C%d",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC,
		boolBit(r.ReadFlag(cpu.FlagZ)), boolBit(r.ReadFlag(cpu.FlagN)),
		boolBit(r.ReadFlag(cpu.FlagH)), boolBit(r.ReadFlag(cpu.FlagC)),
	)
	return panelStyle.Render(body)
}

func (m Model) memoryPanel() string {
	r := m.machine.Reg
	page := r.PC &^ 0x000F
	var rows []byte
	for row := uint16(0); row < 4; row++ {
		for col := uint16(0); col < 16; col++ {
			addr := page + row*16 + col
			v, err := m.machine.Bus.Read(addr)
			if err != nil {
				v = 0
			}
			rows = append(rows, fmt.Sprintf("%02X ", v)...)
		}
		rows = append(rows, '\n')
	}
	return panelStyle.Render(string(rows))
}

func (m Model) statusLine() string {
	if m.lastErr != nil {
		return statusStyle.Render("error: " + m.lastErr.Error())
	}
	if m.lastStep == "" {
		return ""
	}
	return m.lastStep + "\n" + spew.Sdump(m.machine.Reg)
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
