package alarm

import "github.com/oshokin/vitals-sim/internal/config"

// State is one alarm tier. The zero value is Normal.
type State uint8

// Alarm tiers, least to most severe.
const (
	Normal State = iota
	Warning
	Critical
	Failure
)

// tierInfo is the fixed register pattern and label of a tier.
type tierInfo struct {
	// name is the short tier identifier used in logs and JSON frames.
	name string
	// mask is the value written to the port D output data register.
	mask uint16
	// description is the human-readable label printed next to the mask.
	description string
}

//nolint:gochecknoglobals // Read-only lookup table indexed by State.
var tiers = [...]tierInfo{
	Normal:   {name: "NORMAL", mask: config.ODRNormal, description: "NORMAL"},
	Warning:  {name: "WARNING", mask: config.ODRWarning, description: "WARNING: Even Pins ON"},
	Critical: {name: "CRITICAL", mask: config.ODRCritical, description: "CRITICAL: Odd Pins ON"},
	Failure:  {name: "FAILURE", mask: config.ODRFailure, description: "SENSOR ERROR"},
}

// States lists every tier in severity order.
func States() []State {
	return []State{Normal, Warning, Critical, Failure}
}

// Evaluate maps an SpO2 percentage to its alarm tier. First match wins:
// a literal 0 is a sensor fault, then <90 critical, then <95 warning.
// Negative readings are not faults; they fall into Critical.
func Evaluate(spo2 int) State {
	switch {
	case spo2 == config.SpO2SensorError:
		return Failure
	case spo2 < config.SpO2CriticalBelow:
		return Critical
	case spo2 < config.SpO2WarningBelow:
		return Warning
	default:
		return Normal
	}
}

// Mask returns the port D ODR bit pattern for the tier.
func (s State) Mask() uint16 {
	return s.info().mask
}

// Description returns the label printed next to the mask.
func (s State) Description() string {
	return s.info().description
}

// String returns the tier name.
func (s State) String() string {
	return s.info().name
}

// IsActive reports whether any alarm LED is lit.
func (s State) IsActive() bool {
	return s.Mask() != config.ODRNormal
}

// info returns the table entry, treating unknown values as Failure.
func (s State) info() tierInfo {
	if int(s) >= len(tiers) {
		return tiers[Failure]
	}

	return tiers[s]
}
