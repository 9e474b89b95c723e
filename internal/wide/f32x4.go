package wide

import "golang.org/x/image/math/f32"

// F32x4 holds four float32 lanes in a fixed-size array.
// Every operation is a straight loop over the array so the compiler can
// keep the lanes in one SSE/NEON register.
//
// The underlying type is the same as golang.org/x/image/math/f32.Vec4,
// so values convert freely in both directions.
type F32x4 f32.Vec4

// LoadF32x4 packs four scalars into lanes 0..3.
func LoadF32x4(x, y, z, w float32) F32x4 {
	return F32x4{x, y, z, w}
}

// X returns lane 0.
func (v F32x4) X() float32 { return v[0] }

// Y returns lane 1.
func (v F32x4) Y() float32 { return v[1] }

// Z returns lane 2.
func (v F32x4) Z() float32 { return v[2] }

// W returns lane 3.
func (v F32x4) W() float32 { return v[3] }

// ZWXY swaps the low and high lane pairs.
func (v F32x4) ZWXY() F32x4 {
	return F32x4{v[2], v[3], v[0], v[1]}
}

// Max performs element-wise maximum.
// A NaN in either lane yields the lane from other.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Min performs element-wise minimum.
// A NaN in either lane yields the lane from other.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Eq reports whether all four lanes compare equal.
func (v F32x4) Eq(other F32x4) bool {
	return v == other
}
