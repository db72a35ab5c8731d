//go:build !race

package ringslab

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
