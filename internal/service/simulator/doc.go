// Package simulator runs the firmware bench loop.
//
// Each record pulled from the readings stream is mapped to a PWM compare
// value and a GPIO alarm pattern. The simulated clock advances one sample
// period per record. A Reporter receives the records that pass the display
// filter: the first record, every N-th record, and any record with an
// active alarm.
package simulator
