package programs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/approx/internal/transcript"
)

// Prompter reads line-oriented answers and records them in the transcript.
type Prompter struct {
	r  *bufio.Reader
	tr *transcript.Transcript
}

// NewPrompter reads answers from r.
func NewPrompter(r io.Reader, tr *transcript.Transcript) *Prompter {
	return &Prompter{r: bufio.NewReader(r), tr: tr}
}

// Ask shows question and returns the trimmed answer. A final line without a
// newline is still an answer; running out of input is io.EOF.
func (p *Prompter) Ask(question string) (string, error) {
	p.tr.Prompt(question)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	p.tr.Echo(question, answer)
	return answer, nil
}

// Number asks for a float. Text that does not parse gives NaN, which every
// range rejects.
func (p *Prompter) Number(question string) (float64, string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return 0, "", err
	}
	return parseNumber(answer), answer, nil
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
