package simulator

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/oshokin/vitals-sim/internal/domain/alarm"
	"github.com/oshokin/vitals-sim/internal/domain/vitals"
	"github.com/oshokin/vitals-sim/internal/logger"
	"github.com/oshokin/vitals-sim/internal/repository/readings"
)

// Frame is a processed record selected for display.
type Frame struct {
	// Index is the 1-based position of the record in the stream.
	Index int
	// Elapsed is the simulated time at which the record was sampled.
	Elapsed time.Duration
	// Reading is the raw input record.
	Reading vitals.Reading
	// Outputs are the derived register values.
	Outputs vitals.Outputs
}

// Summary describes a finished run.
type Summary struct {
	// Records is the number of records processed.
	Records int
	// Displayed is the number of frames handed to the reporter.
	Displayed int
	// Tiers counts processed records per alarm tier.
	Tiers map[alarm.State]int
	// Elapsed is the simulated time covered by the run.
	Elapsed time.Duration
	// Truncated is set when a malformed record ended the stream early.
	Truncated bool
	// Interrupted is set when the run was canceled before the input ended.
	Interrupted bool
}

// Reporter renders the run.
type Reporter interface {
	Start() error
	Frame(frame *Frame) error
	Finish(summary *Summary) error
}

// clock is the simulated sample clock. Elapsed is derived from the tick
// count so it stays exact over long runs.
type clock struct {
	// period is the time between two samples.
	period time.Duration
	// ticks is the number of periods elapsed.
	ticks int64
}

// now returns the simulated time.
func (c *clock) now() time.Duration {
	return time.Duration(c.ticks) * c.period
}

// advance moves the clock one period forward.
func (c *clock) advance() {
	c.ticks++
}

// Simulator drives readings through the firmware logic.
type Simulator struct {
	// period is the simulated time between records.
	period time.Duration
	// displayEvery forces a frame every N records; zero disables it.
	displayEvery int
	// reporter receives the filtered frames.
	reporter Reporter
}

// New builds a Simulator.
func New(period time.Duration, displayEvery int, reporter Reporter) *Simulator {
	return &Simulator{
		period:       period,
		displayEvery: displayEvery,
		reporter:     reporter,
	}
}

// shouldDisplay is the display filter applied to the 1-based record index.
func (s *Simulator) shouldDisplay(index int, state alarm.State) bool {
	isStart := index == 1
	isMark := s.displayEvery > 0 && index%s.displayEvery == 0

	return isStart || isMark || state.IsActive()
}

// Simulate pulls records from src until it is exhausted, a record is
// malformed, or ctx is canceled. Only reporter failures are returned as errors.
//
//nolint:cyclop // The loop mirrors the firmware main loop; splitting it hides the flow.
func (s *Simulator) Simulate(ctx context.Context, src readings.Source) (*Summary, error) {
	summary := &Summary{
		Tiers: make(map[alarm.State]int, len(alarm.States())),
	}
	clk := &clock{period: s.period}

	if err := s.reporter.Start(); err != nil {
		return nil, err
	}

	for {
		if ctx.Err() != nil {
			logger.Info(ctx, "Context canceled, stopping simulation")

			summary.Interrupted = true

			break
		}

		reading, err := src.Next()
		if err != nil {
			s.logStop(ctx, err, summary)

			break
		}

		outputs := vitals.Derive(reading)

		summary.Records++
		summary.Tiers[outputs.Alarm]++

		if s.shouldDisplay(summary.Records, outputs.Alarm) {
			frame := &Frame{
				Index:   summary.Records,
				Elapsed: clk.now(),
				Reading: reading,
				Outputs: outputs,
			}

			if err = s.reporter.Frame(frame); err != nil {
				return nil, err
			}

			summary.Displayed++
		}

		clk.advance()
	}

	summary.Elapsed = clk.now()

	if err := s.reporter.Finish(summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// logStop records why the stream ended. None of these reasons are failures.
func (s *Simulator) logStop(ctx context.Context, err error, summary *Summary) {
	switch {
	case errors.Is(err, io.EOF):
		logger.DebugKV(ctx, "Input exhausted", "records", summary.Records)
	case errors.Is(err, readings.ErrMalformed):
		summary.Truncated = true

		logger.DebugKV(ctx, "Stream ended at malformed record", "records", summary.Records, "reason", err)
	default:
		summary.Truncated = true

		logger.WarnKV(ctx, "Stream ended on read failure", "records", summary.Records, "error", err)
	}
}
