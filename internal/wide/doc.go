// Package wide provides the four-lane float32 backends behind shiny.Vec4.
//
// # Backends
//
// F32x4: a [4]float32 lane array. Operations are simple loops over a
// fixed-size array, which lets the compiler keep the value in a single
// vector register on amd64 (SSE) and arm64 (NEON).
//
// Scalar4: four named fields, one scalar operation per lane. Used on every
// other target and whenever the purego build tag is set.
//
// Both types always compile. The root package aliases exactly one of them
// at build time, and the tests in this package run one conformance suite
// against both so their results stay interchangeable.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Max/Min use a plain comparison so a NaN lane resolves the same way
//     on every backend
package wide
