package vitals

import (
	"github.com/oshokin/vitals-sim/internal/domain/alarm"
	"github.com/oshokin/vitals-sim/internal/domain/pwm"
)

// Reading is one heart_rate,spo2 record from the sensor stream.
type Reading struct {
	// HeartRate is the pulse in beats per minute.
	HeartRate int
	// SpO2 is the peripheral oxygen saturation percentage.
	SpO2 int
}

// Outputs are the register values the firmware writes for a Reading.
type Outputs struct {
	// CCR is the timer capture/compare value driving the status LED.
	CCR int
	// Duty is CCR expressed as a duty-cycle percentage.
	Duty float32
	// Alarm is the tier driving the port D indicator.
	Alarm alarm.State
}

// Derive computes both register outputs for r. It keeps no state.
func Derive(r Reading) Outputs {
	ccr := pwm.ComputeCCR(r.HeartRate)

	return Outputs{
		CCR:   ccr,
		Duty:  pwm.DutyPercent(ccr),
		Alarm: alarm.Evaluate(r.SpO2),
	}
}
