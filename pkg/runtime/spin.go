package runtime

import (
	_ "unsafe" // for go:linkname
)

// Procyield spins for a given number of cycles without yielding to the
// scheduler. On x86 it issues the CPU PAUSE instruction, keeping the core
// warm at low power while waiting for a contended slot.
//
//go:linkname Procyield runtime.procyield
func Procyield(cycles uint32)
