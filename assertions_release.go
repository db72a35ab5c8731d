//go:build !ringslab_debug

package ringslab

// debugAssertsEnabled is false outside ringslab_debug builds. Callers
// must gate both the debugAssert call and its argument expression
// behind this constant (`if debugAssertsEnabled { ... }`) so the
// compiler proves the branch dead and drops it, including any atomic
// load performed only to build the assertion's condition.
const debugAssertsEnabled = false

// debugAssert is never reached in release builds; kept only so the
// gated call sites still type-check. The claim/publish contract
// (spec.md §7) is a programmer-error surface, not a runtime-checked
// one, outside ringslab_debug builds.
func debugAssert(cond bool, format string, args ...any) {}
