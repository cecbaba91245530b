// Package core provides small numeric helpers shared by the filter
// packages: dB conversions, frequency unit conversions and the linear and
// logarithmic ranges used to build frequency sweeps.
package core
