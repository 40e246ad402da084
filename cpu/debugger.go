package cpu

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu *CPU

	offset uint16 // only for drawing pageTable
	prevPC uint16
	err    error
}

// Init is the first function called; the image is already loaded by Debug,
// so there's no initial command.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Space or "j" steps one
// instruction; "q" quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(); err != nil {
				var unimpl *UnimplementedOpcode
				if !errors.As(err, &unimpl) {
					m.err = err
					return m, tea.Quit
				}
				m.err = err
			} else {
				m.err = nil
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte memory page as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Bus.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, set := range []bool{
		m.cpu.Flags.Sign,
		m.cpu.Flags.Zero,
		m.cpu.Flags.AuxCarry,
		m.cpu.Flags.Parity,
		m.cpu.Flags.Carry,
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	errLine := ""
	if m.err != nil {
		errLine = m.err.Error()
	}
	return fmt.Sprintf(`
PC: %04x (%04x)  SP: %04x
 A: %02x
 B: %02x  C: %02x
 D: %02x  E: %02x
 H: %02x  L: %02x
S Z AC P CY
%s
%s
`,
		m.cpu.PC, m.prevPC, m.cpu.SP,
		m.cpu.A,
		m.cpu.B, m.cpu.C,
		m.cpu.D, m.cpu.E,
		m.cpu.H, m.cpu.L,
		flags,
		errLine,
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset), int(m.offset) + 16, int(m.offset) + 32,
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the debugger's panel: the memory-page table, the register
// and flag status, and a dump of the opcode at PC.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(Opcodes[m.cpu.Bus.Read(m.cpu.PC)]),
	)
}

// Debug loads program into the CPU's bus at offset, then starts an
// interactive single-step TUI.
func (c *CPU) Debug(program []byte, offset uint16) error {
	if err := c.Load(program, offset); err != nil {
		return err
	}
	c.PC = offset

	p, err := tea.NewProgram(model{cpu: c, offset: offset}).Run()
	if err != nil {
		return err
	}
	if x, ok := p.(model); ok && x.err != nil {
		fmt.Println("Error:", x.err)
	}
	return nil
}
