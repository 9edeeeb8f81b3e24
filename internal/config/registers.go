package config

// Timer peripheral driving the status LED.
const (
	// TimerAutoReload is the timer auto-reload register (ARR) value; CCR values live in [0, TimerAutoReload].
	TimerAutoReload = 1000
	// MaxHeartRateBPM is the heart rate mapped to a full duty cycle.
	MaxHeartRateBPM = 200
	// DutyScale converts a CCR value into a duty percentage.
	DutyScale = TimerAutoReload / 100
)

// GPIO port D output data register (ODR) patterns driving the alarm indicator.
const (
	// ODRNormal turns every alarm LED off.
	ODRNormal uint16 = 0x0000
	// ODRWarning lights the even pins.
	ODRWarning uint16 = 0x5555
	// ODRCritical lights the odd pins.
	ODRCritical uint16 = 0xAAAA
	// ODRFailure lights every pin.
	ODRFailure uint16 = 0xFFFF
)

// SpO2 tier boundaries, exclusive upper bounds.
const (
	SpO2CriticalBelow = 90
	SpO2WarningBelow  = 95
	// SpO2SensorError is the literal reading reported by a disconnected probe.
	SpO2SensorError = 0
)
