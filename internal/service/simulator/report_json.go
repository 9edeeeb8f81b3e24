package simulator

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/vitals-sim/internal/domain/alarm"
)

// Record types in the JSON stream.
const (
	jsonTypeFrame   = "frame"
	jsonTypeSummary = "summary"
)

// JSONReporter writes one protobuf-JSON object per line: a "frame" object
// per displayed record and a closing "summary" object.
type JSONReporter struct {
	// w receives the stream, normally stdout.
	w io.Writer
	// marshalOptions keeps every object on a single line.
	marshalOptions protojson.MarshalOptions
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		w: w,
		marshalOptions: protojson.MarshalOptions{
			Multiline:       false,
			EmitUnpopulated: true,
		},
	}
}

// Start has nothing to print for JSON output.
func (r *JSONReporter) Start() error {
	return nil
}

// Frame writes a frame object.
func (r *JSONReporter) Frame(frame *Frame) error {
	return r.write(map[string]any{
		"type":        jsonTypeFrame,
		"index":       frame.Index,
		"time_s":      frame.Elapsed.Seconds(),
		"bpm":         frame.Reading.HeartRate,
		"spo2":        frame.Reading.SpO2,
		"ccr":         frame.Outputs.CCR,
		"duty":        float64(frame.Outputs.Duty),
		"odr":         fmt.Sprintf("0x%04X", frame.Outputs.Alarm.Mask()),
		"alarm":       frame.Outputs.Alarm.String(),
		"description": frame.Outputs.Alarm.Description(),
	})
}

// Finish writes the summary object.
func (r *JSONReporter) Finish(summary *Summary) error {
	tiers := make(map[string]any, len(alarm.States()))
	for _, state := range alarm.States() {
		tiers[state.String()] = summary.Tiers[state]
	}

	return r.write(map[string]any{
		"type":        jsonTypeSummary,
		"records":     summary.Records,
		"displayed":   summary.Displayed,
		"elapsed_s":   summary.Elapsed.Seconds(),
		"tiers":       tiers,
		"truncated":   summary.Truncated,
		"interrupted": summary.Interrupted,
	})
}

// write encodes fields as a google.protobuf.Struct followed by a newline.
func (r *JSONReporter) write(fields map[string]any) error {
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("build %v object: %w", fields["type"], err)
	}

	data, err := r.marshalOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %v object: %w", fields["type"], err)
	}

	data = append(data, '\n')

	if _, err = r.w.Write(data); err != nil {
		return fmt.Errorf("write %v object: %w", fields["type"], err)
	}

	return nil
}
