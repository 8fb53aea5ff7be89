// Package foundation provides the scalar math utilities underpinning the
// seedlight renderer.
//
// Every numeric subsystem of the renderer — shading, sampling, acceleration
// structure sizing, light parameter validation — depends on this package for
// consistent, documented scalar behavior, particularly around floating-point
// comparison, which is notoriously easy to get wrong.
//
// # Operations
//
//   - Angle conversion: [DegToRad], [RadToDeg], [NormalizeAngle]
//   - Arithmetic: [Abs], [Square], [PowInt], [Factorial]
//   - Power-of-two helpers: [NextPow2], [IsPow2], [Log2]
//   - Clamping and wrapping: [Clamp], [Saturate], [Wrap], [Mod], [FMod]
//   - Rounding: [Truncate], [Round] (round half away from zero)
//   - Interpolation: [Lerp], [Mix], [Linearstep], [Smoothstep], [Fit]
//   - Robust comparison: [Feq], [FeqEps], [Fz], [FzEps]
//
// # Robust Comparison
//
// The approximate-equality test [Feq] is relative, not absolute, so it stays
// meaningful across wide magnitude ranges. Each float type carries a default
// tolerance ([DefaultEps]): 1e-6 for float32 and 1e-14 for float64. Extreme
// magnitude ratios that would overflow or underflow the division inside the
// test are reported as "not equal" rather than faulting.
//
// Integer comparison helpers [FeqInt] and [FzInt] test exact equality; they
// exist so calling code can treat all scalar kinds uniformly.
//
// # Preconditions
//
// Functions with documented preconditions (for example [NextPow2] requires
// x > 0 and [Clamp] requires min <= max) do not validate their arguments in
// regular builds. Building with the "contracts" tag enables precondition
// checks that panic with a message naming the violated precondition; see the
// internal contract package. Violating a precondition in a regular build
// yields an unspecified result, never a fault.
//
// # Thread Safety
//
// Every function in this package is a pure function of its arguments and a
// fixed constant table. There is no shared mutable state, no allocation, and
// no I/O; all operations are safe to call concurrently from any number of
// goroutines without synchronization.
package foundation
