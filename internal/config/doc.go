// Package config defines the simulation settings used by vitals-sim and
// provides helpers to load, validate and save them in YAML format.
//
// It also names the fixed hardware register values (timer reload, GPIO ODR
// patterns, SpO2 tier limits) that the firmware logic maps readings onto.
package config
