package simulator

import (
	"fmt"
	"io"
	"strings"
)

// frameSeparator closes every block of the text report.
const frameSeparator = "--------------------------------------------------------------"

// TextReporter writes the console report of the firmware bench.
type TextReporter struct {
	// w receives the report, normally stdout.
	w io.Writer
	// sb is reused to build each block before a single write.
	sb strings.Builder
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Start prints the banner.
func (r *TextReporter) Start() error {
	_, err := io.WriteString(r.w, "--- BME3323 FIRMWARE SIMULATION: STARTING ---\n--- Processing Patient Vitals... ---\n\n")
	if err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	return nil
}

// Frame prints the status, PWM and GPIO lines of one record.
func (r *TextReporter) Frame(frame *Frame) error {
	r.sb.Reset()

	fmt.Fprintf(&r.sb, "Time: %.3f s | BPM: %d | SpO2: %d\n",
		frame.Elapsed.Seconds(), frame.Reading.HeartRate, frame.Reading.SpO2)
	fmt.Fprintf(&r.sb, "  -> [PWM] Calculated CCR Value: %d (Duty: %.1f%%)\n",
		frame.Outputs.CCR, frame.Outputs.Duty)
	fmt.Fprintf(&r.sb, "  -> [GPIO] Port D ODR Value: 0x%04X (%s)\n",
		frame.Outputs.Alarm.Mask(), frame.Outputs.Alarm.Description())
	r.sb.WriteString(frameSeparator)
	r.sb.WriteByte('\n')

	if _, err := io.WriteString(r.w, r.sb.String()); err != nil {
		return fmt.Errorf("write frame %d: %w", frame.Index, err)
	}

	return nil
}

// Finish prints the closing line.
func (r *TextReporter) Finish(summary *Summary) error {
	footer := "\n>>> Simulation Completed Successfully.\n"
	if summary.Interrupted {
		footer = "\n>>> Simulation Interrupted.\n"
	}

	if _, err := io.WriteString(r.w, footer); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	return nil
}
