// Package transcript mirrors console program output into a plain-text
// file.
//
// Every line is written to both the console and the file. Console output
// can be styled with lipgloss; the file always receives plain text. Prompts
// go to the console only, and the answer is echoed into the file next to
// the prompt, so the file reads as a complete record of the session.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider separates sections.
const Divider = "--------------------------------"

// Transcript writes to a console and a file at the same time.
type Transcript struct {
	console io.Writer
	file    io.Writer
	closer  io.Closer
	styles  styles
	err     error
}

// Option configures a Transcript.
type Option func(*Transcript)

// WithColor enables or disables console styling.
func WithColor(enabled bool) Option {
	return func(t *Transcript) {
		if !enabled {
			t.styles = plainStyles()
		}
	}
}

// New writes to console and file. Either may be io.Discard.
func New(console, file io.Writer, opts ...Option) *Transcript {
	t := &Transcript{
		console: console,
		file:    file,
		styles:  newStyles(lipgloss.NewRenderer(console)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Open creates (or truncates) the file at path and returns a transcript
// writing to it and to console.
func Open(path string, console io.Writer, opts ...Option) (*Transcript, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}
	t := New(console, f, opts...)
	t.closer = f
	return t, nil
}

// Close flushes the file. It returns the first write error, if any.
func (t *Transcript) Close() error {
	var closeErr error
	if t.closer != nil {
		closeErr = t.closer.Close()
	}
	return errors.Join(t.err, closeErr)
}

// Err returns the first write error.
func (t *Transcript) Err() error {
	return t.err
}

func (t *Transcript) write(console, file string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.console, console); err != nil {
		t.err = err
		return
	}
	if _, err := io.WriteString(t.file, file); err != nil {
		t.err = err
	}
}

// Start prints the opening banner, the program description and the run id.
func (t *Transcript) Start(description, runID string) {
	t.banner("Start Of Program")
	t.Printf("%s", description)
	if runID != "" {
		t.write("\n"+t.styles.faint.Render("run: "+runID)+"\n", "\nrun: "+runID+"\n")
	}
}

// End prints the closing banner.
func (t *Transcript) End() {
	t.banner("End Of Program")
	t.write("\n", "")
}

// Divider prints a section divider preceded by a blank line.
func (t *Transcript) Divider() {
	t.write("\n"+t.styles.faint.Render(Divider)+"\n", "\n"+Divider+"\n")
}

func (t *Transcript) banner(title string) {
	t.write(
		"\n"+t.styles.faint.Render(Divider)+"\n"+t.styles.title.Render(title)+"\n"+t.styles.faint.Render(Divider)+"\n",
		"\n"+Divider+"\n"+title+"\n"+Divider+"\n",
	)
}

// Printf writes a formatted paragraph preceded by a blank line.
func (t *Transcript) Printf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	t.write("\n"+s+"\n", "\n"+s+"\n")
}

// Notice writes a highlighted paragraph, used for clamped inputs and
// undefined results.
func (t *Transcript) Notice(msg string) {
	t.write("\n"+t.styles.notice.Render(msg)+"\n", "\n"+msg+"\n")
}

// Result writes "label = value." with the value highlighted on the console.
func (t *Transcript) Result(label, value string) {
	t.write(
		"\n"+label+" = "+t.styles.value.Render(value)+".\n",
		"\n"+label+" = "+value+".\n",
	)
}

// Prompt shows a question on the console only.
func (t *Transcript) Prompt(question string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.console, "\n"+t.styles.prompt.Render(question)+" "); err != nil {
		t.err = err
	}
}

// Echo records a question and its answer in the file only. Interactive
// answers already appear on the console through the terminal's own echo.
func (t *Transcript) Echo(question, answer string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.file, "\n"+question+" "+strings.TrimSpace(answer)+"\n"); err != nil {
		t.err = err
	}
}

type styles struct {
	title  lipgloss.Style
	faint  lipgloss.Style
	notice lipgloss.Style
	value  lipgloss.Style
	prompt lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		faint:  r.NewStyle().Foreground(lipgloss.Color("8")),
		notice: r.NewStyle().Foreground(lipgloss.Color("214")),
		value:  r.NewStyle().Foreground(lipgloss.Color("10")),
		prompt: r.NewStyle().Bold(true),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{title: plain, faint: plain, notice: plain, value: plain, prompt: plain}
}
