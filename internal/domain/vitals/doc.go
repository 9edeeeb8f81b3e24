// Package vitals contains the patient reading fed to the firmware logic and
// the register outputs derived from it.
package vitals
