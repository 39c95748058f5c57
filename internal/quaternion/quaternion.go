package quaternion

// Quaternion is w + x·i + y·j + z·k with integer components.
//
// It is a value type; two quaternions with equal components are
// interchangeable and compare equal with ==.
type Quaternion struct {
	W int64
	X int64
	Y int64
	Z int64
}

var (
	Zero     = Quaternion{}
	Identity = Quaternion{W: 1}
	I        = Quaternion{X: 1}
	J        = Quaternion{Y: 1}
	K        = Quaternion{Z: 1}
)

// New returns w + x·i + y·j + z·k.
func New(w, x, y, z int64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Components returns (w, x, y, z).
func (q Quaternion) Components() [4]int64 {
	return [4]int64{q.W, q.X, q.Y, q.Z}
}

// IsZero reports whether every component is zero.
func (q Quaternion) IsZero() bool { return q == Zero }

// Add returns the componentwise sum over Z.
func Add(a, b Quaternion) Quaternion {
	return Quaternion{
		W: a.W + b.W,
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Multiply returns the Hamilton product a·b over Z.
func Multiply(a, b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Conjugate returns (w, −x, −y, −z).
func Conjugate(q Quaternion) Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// NormSquared returns w² + x² + y² + z².
func NormSquared(q Quaternion) int64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Equal reports componentwise equality.
func Equal(a, b Quaternion) bool { return a == b }
