package render

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Screen draws cursor addressed text on the alternate buffer of a terminal.
type Screen struct {
	out    io.Writer
	buffer strings.Builder
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

func (s *Screen) Init() error {
	_, err := io.WriteString(s.out, strings.Join([]string{
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	}, ""))
	return err
}

func (s *Screen) Deinit() error {
	_, err := io.WriteString(s.out, "\033[?1049l"+ // Disable alternate buffer
		"\033[?25h", // Make the cursor visible
	)
	return err
}

// Clear queues a full screen clear ahead of the next Fill calls.
func (s *Screen) Clear() {
	s.buffer.WriteString("\033[2J")
}

// Fill places message at a 1 based row and column.
func (s *Screen) Fill(row, column int, message string) {
	s.buffer.WriteString("\033[")
	s.buffer.WriteString(strconv.Itoa(row))
	s.buffer.WriteString(";")
	s.buffer.WriteString(strconv.Itoa(column))
	s.buffer.WriteString("H")
	s.buffer.WriteString(message)
}

func (s *Screen) Flush() error {
	_, err := io.WriteString(s.out, s.buffer.String())
	s.buffer.Reset()
	return err
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the terminal columns and rows, or 80x24 when f is not one.
func Size(f *os.File) (int, int) {
	columns, rows, err := term.GetSize(int(f.Fd()))
	if nil != err || columns <= 0 || rows <= 0 {
		return 80, 24
	}
	return columns, rows
}
