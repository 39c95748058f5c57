package render

import (
	"fmt"
	"math"

	"quatex/internal/quaternion"
)

// Vec3 is a direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Length is the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Arrow returns the unit direction of the vector part (x, y, z) of q. ok is
// false when the vector part is zero and there is no direction to draw.
func Arrow(q quaternion.Quaternion) (v Vec3, ok bool) {
	v = Vec3{X: float64(q.X), Y: float64(q.Y), Z: float64(q.Z)}
	l := v.Length()
	if l == 0 {
		return Vec3{}, false
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, true
}
