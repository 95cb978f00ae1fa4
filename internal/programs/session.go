package programs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GriffinCanCode/approx/internal/clamp"
	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/GriffinCanCode/approx/internal/numerics/reference"
	"github.com/GriffinCanCode/approx/internal/shared/id"
	"github.com/GriffinCanCode/approx/internal/transcript"
	"go.uber.org/zap"
)

// Program is one console program.
type Program interface {
	Name() string
	Description() string
	Run(ctx context.Context, s *Session) error
}

// Session carries what a program run needs: configuration, the transcript,
// the input source and the ambient logger and metrics.
type Session struct {
	cfg     *config.Config
	tr      *transcript.Transcript
	in      *Prompter
	log     *logging.Logger
	metrics *monitoring.Metrics
	runID   id.RunID
	compare bool
	presets map[string]float64
	program string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMetrics records program runs, clamps and evaluations.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithCompare prints a library reference and the absolute error next to
// each approximation.
func WithCompare(on bool) Option {
	return func(s *Session) { s.compare = on }
}

// WithRunID overrides the generated run id.
func WithRunID(runID id.RunID) Option {
	return func(s *Session) { s.runID = runID }
}

// WithPreset supplies the value of an input instead of prompting for it.
func WithPreset(param string, v float64) Option {
	return func(s *Session) { s.presets[param] = v }
}

// NewSession reads answers from in and writes through tr.
func NewSession(cfg *config.Config, tr *transcript.Transcript, in io.Reader, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		tr:      tr,
		in:      NewPrompter(in, tr),
		log:     logging.NewNop(),
		presets: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = id.NewRunID()
	}
	return s
}

// RunID identifies this session in the transcript and the logs.
func (s *Session) RunID() id.RunID {
	return s.runID
}

// Execute runs p between the start and end banners and records the outcome.
func Execute(ctx context.Context, p Program, s *Session) error {
	s.program = p.Name()
	s.log = s.log.With(zap.String("program", p.Name()), zap.String("run_id", s.runID.String()))

	start := time.Now()
	s.log.Debug("program started")
	s.tr.Start(p.Description(), s.runID.String())

	err := p.Run(ctx, s)
	s.tr.End()
	if err == nil {
		err = s.tr.Err()
	}

	status := "ok"
	if err != nil {
		status = "error"
		s.log.Error("program failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
	} else {
		s.log.Info("program finished", zap.Duration("duration", time.Since(start)))
	}
	if s.metrics != nil {
		s.metrics.RecordProgramRun(p.Name(), status)
	}
	return err
}

// input returns the preset for r.Name or prompts with question, echoes the
// value and clamps it into r.
func (s *Session) input(question string, r clamp.Range) (float64, error) {
	v, _, err := s.inputNotice(question, r)
	return v, err
}

// inputNotice is input that also reports whether the value was replaced.
func (s *Session) inputNotice(question string, r clamp.Range) (float64, *clamp.Notice, error) {
	v, ok := s.presets[r.Name]
	raw := ""
	if !ok {
		var err error
		v, raw, err = s.in.Number(question)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, nil, fmt.Errorf("reading %s: %w", r.Name, io.ErrUnexpectedEOF)
			}
			return 0, nil, err
		}
	}
	if math.IsNaN(v) && raw != "" {
		s.tr.Printf("The value which was entered for %s is %q.", r.Name, raw)
	} else {
		s.tr.Printf("The value which was entered for %s is %s.", r.Name, s.format(v))
	}

	got, notice := r.Apply(v)
	if notice != nil {
		s.clamped(notice)
	}
	return got, notice, nil
}

func (s *Session) clamped(n *clamp.Notice) {
	s.tr.Notice(n.Message())
	s.log.Warn("input clamped",
		zap.String("param", n.Param),
		zap.Float64("value", n.Value),
		zap.Float64("default", n.Default),
		zap.String("range", n.Range))
	if s.metrics != nil {
		s.metrics.RecordClamp(s.program, n.Param)
	}
}

// confirm asks a yes/no question answered with 1 or 0. Anything other than
// 1, including end of input, is no.
func (s *Session) confirm(question string) bool {
	answer, err := s.in.Ask(question)
	if err != nil {
		return false
	}
	return strings.TrimSpace(answer) == "1"
}

// report prints label = v. With compare on, ref and the absolute error
// follow on their own line.
func (s *Session) report(function, label string, v, ref float64) {
	s.tr.Result(label, s.format(v))
	if numerics.IsDegenerate(v) {
		s.tr.Notice(label + " is not a finite number.")
	}
	if s.compare && !math.IsNaN(ref) {
		s.tr.Printf("reference = %s, absolute error = %s", s.format(ref), s.format(reference.AbsError(v, ref)))
	}
	if s.metrics != nil {
		s.metrics.RecordEvaluation(s.program, function)
	}
}

// undefined prints a notice in place of a result.
func (s *Session) undefined(label, why string) {
	s.tr.Notice(label + " is undefined: " + why + ".")
}

// format renders v with the configured number of significant digits.
func (s *Session) format(v float64) string {
	return FormatFloat(v, s.cfg.Output.Precision)
}

// FormatFloat renders v with up to precision significant digits and no
// trailing zeros. A precision of zero or less gives the shortest exact
// representation.
func FormatFloat(v float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	out := strconv.FormatFloat(v, 'g', precision, 64)
	mantissa, exponent := out, ""
	if i := strings.IndexByte(out, 'e'); i >= 0 {
		mantissa, exponent = out[:i], out[i:]
	}
	if !strings.Contains(mantissa, ".") {
		return out
	}
	mantissa = strings.TrimSuffix(strings.TrimRight(mantissa, "0"), ".")
	return mantissa + exponent
}
