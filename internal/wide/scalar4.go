package wide

// Scalar4 is the portable fallback for F32x4.
// Lanes are named fields and every operation is spelled out one lane at a
// time, so nothing depends on how the target lays out arrays.
type Scalar4 struct {
	x, y, z, w float32
}

// LoadScalar4 packs four scalars into lanes 0..3.
func LoadScalar4(x, y, z, w float32) Scalar4 {
	return Scalar4{x: x, y: y, z: z, w: w}
}

func (v Scalar4) X() float32 { return v.x }
func (v Scalar4) Y() float32 { return v.y }
func (v Scalar4) Z() float32 { return v.z }
func (v Scalar4) W() float32 { return v.w }

// ZWXY swaps the low and high lane pairs.
func (v Scalar4) ZWXY() Scalar4 {
	return Scalar4{x: v.z, y: v.w, z: v.x, w: v.y}
}

// Max performs element-wise maximum with the same NaN rule as F32x4.Max.
func (v Scalar4) Max(other Scalar4) Scalar4 {
	return Scalar4{
		x: maxLane(v.x, other.x),
		y: maxLane(v.y, other.y),
		z: maxLane(v.z, other.z),
		w: maxLane(v.w, other.w),
	}
}

// Min performs element-wise minimum with the same NaN rule as F32x4.Min.
func (v Scalar4) Min(other Scalar4) Scalar4 {
	return Scalar4{
		x: minLane(v.x, other.x),
		y: minLane(v.y, other.y),
		z: minLane(v.z, other.z),
		w: minLane(v.w, other.w),
	}
}

func (v Scalar4) Add(other Scalar4) Scalar4 {
	return Scalar4{x: v.x + other.x, y: v.y + other.y, z: v.z + other.z, w: v.w + other.w}
}

func (v Scalar4) Sub(other Scalar4) Scalar4 {
	return Scalar4{x: v.x - other.x, y: v.y - other.y, z: v.z - other.z, w: v.w - other.w}
}

func (v Scalar4) Mul(other Scalar4) Scalar4 {
	return Scalar4{x: v.x * other.x, y: v.y * other.y, z: v.z * other.z, w: v.w * other.w}
}

func (v Scalar4) Div(other Scalar4) Scalar4 {
	return Scalar4{x: v.x / other.x, y: v.y / other.y, z: v.z / other.z, w: v.w / other.w}
}

// Eq reports whether all four lanes compare equal.
func (v Scalar4) Eq(other Scalar4) bool {
	return v.x == other.x && v.y == other.y && v.z == other.z && v.w == other.w
}

// maxLane and minLane keep the F32x4 comparison rule. The builtin max/min
// propagate NaN instead.
func maxLane(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minLane(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
