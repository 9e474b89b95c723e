package wide

// Lanes is the operation set shared by every four-lane backend.
// The root package picks one implementation per build target; tests use
// the constraint to run the same suite over all of them.
type Lanes[T any] interface {
	X() float32
	Y() float32
	Z() float32
	W() float32
	ZWXY() T
	Max(T) T
	Min(T) T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Eq(T) bool
}

// Backend names reported by the root package.
const (
	NameF32x4   = "f32x4"
	NameScalar4 = "scalar4"
)

var (
	_ Lanes[F32x4]   = F32x4{}
	_ Lanes[Scalar4] = Scalar4{}
)
