package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moodline/internal/emotion"
)

const (
	maxTextLines  = 4
	maxHintLength = 60
)

// Console presents the live sentence, the emotion history strip, and an
// optional hint line on the terminal. On a TTY the previous block is
// repainted in place; on anything else each update appends new lines.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	tty       bool
	width     func() int
	lastLines int
	titler    cases.Caser
}

// ConsoleOption customizes the console renderer.
type ConsoleOption func(*Console)

// WithWriter overrides the output writer (useful for tests).
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.out = w
			c.tty = false
		}
	}
}

// WithWidth overrides terminal width detection.
func WithWidth(width int) ConsoleOption {
	return func(c *Console) {
		if width > 0 {
			c.width = func() int { return width }
		}
	}
}

// NewConsole constructs a console renderer writing to stdout.
func NewConsole(opts ...ConsoleOption) *Console {
	console := &Console{
		out:    os.Stdout,
		tty:    isatty.IsTerminal(os.Stdout.Fd()),
		width:  terminalWidth,
		titler: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(console)
	}
	return console
}

// Render paints one frame of output: the history strip, the current
// sentence, and the hint (if any).
func (c *Console) Render(sentence string, history []emotion.Label, hint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := c.buildLines(sentence, history, hint)

	var buf strings.Builder
	if c.tty && c.lastLines > 0 {
		// Move to the top of the previous block and clear to end of screen.
		fmt.Fprintf(&buf, "\x1b[%dA\x1b[J", c.lastLines)
	}
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if _, err := io.WriteString(c.out, buf.String()); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	c.lastLines = len(lines)
	return nil
}

// Close finishes the output block.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastLines > 0 {
		if _, err := io.WriteString(c.out, "\n"); err != nil {
			return fmt.Errorf("render: write output: %w", err)
		}
	}
	return nil
}

func (c *Console) buildLines(sentence string, history []emotion.Label, hint string) []string {
	width := c.width()
	if width <= 0 {
		width = fallbackWidth
	}

	lines := []string{c.historyStrip(history)}

	wrapped := text.WrapSoft(strings.TrimSpace(sentence), width)
	textLines := strings.Split(wrapped, "\n")
	if len(textLines) > maxTextLines {
		textLines = textLines[:maxTextLines]
	}
	lines = append(lines, textLines...)

	if hint = strings.TrimSpace(hint); hint != "" {
		lines = append(lines, truncateHint(hint))
	}
	return lines
}

func (c *Console) historyStrip(history []emotion.Label) string {
	if len(history) == 0 {
		return "[no emotions yet]"
	}
	parts := make([]string, 0, len(history))
	for _, label := range history {
		parts = append(parts, c.titler.String(string(label)))
	}
	return strings.Join(parts, " -> ")
}

func truncateHint(hint string) string {
	runes := []rune(hint)
	if len(runes) <= maxHintLength {
		return hint
	}
	return string(runes[:maxHintLength]) + ".."
}
