// Package alarm classifies SpO2 readings into the alarm tiers shown on the
// GPIO port D indicator.
//
// State is an immutable tier value carrying the ODR bit pattern and the
// description printed next to it; Evaluate is the total mapping from a
// saturation percentage to a State.
package alarm
