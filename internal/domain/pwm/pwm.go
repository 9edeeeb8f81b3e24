// Package pwm maps heart rate onto the capture/compare register of the
// timer that drives the status LED.
package pwm

import "github.com/oshokin/vitals-sim/internal/config"

// ComputeCCR returns the CCR value for a heart rate in BPM.
// The rate is clamped to [0, MaxHeartRateBPM] and scaled linearly onto
// [0, TimerAutoReload]; the fractional part is truncated, not rounded.
func ComputeCCR(heartRate int) int {
	heartRate = min(max(heartRate, 0), config.MaxHeartRateBPM)

	return int(float64(heartRate) / float64(config.MaxHeartRateBPM) * config.TimerAutoReload)
}

// DutyPercent converts a CCR value into the duty cycle shown on the debug line.
// It is computed in single precision like the register readout.
func DutyPercent(ccr int) float32 {
	return float32(ccr) / config.DutyScale
}
