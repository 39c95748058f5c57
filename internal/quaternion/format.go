package quaternion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned by Parse for text that is not a quaternion.
var ErrMalformed = errors.New("malformed quaternion")

// unit suffixes for the x, y and z components.
var units = [4]string{"", "i", "j", "k"}

// String renders q as [w, xi, yj, zk].
func (q Quaternion) String() string {
	c := q.Components()
	return fmt.Sprintf("[%d, %di, %dj, %dk]", c[0], c[1], c[2], c[3])
}

// MarshalText implements encoding.TextMarshaler using String.
func (q Quaternion) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (q *Quaternion) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*q = p
	return nil
}

// Parse reads the String form "[w, xi, yj, zk]". Brackets and unit suffixes
// are optional, so "1,2,3,4" parses too.
func Parse(s string) (Quaternion, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Zero, fmt.Errorf("%w: want 4 components, got %d in %q", ErrMalformed, len(parts), s)
	}
	var c [4]int64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if units[i] != "" {
			p = strings.TrimSuffix(p, units[i])
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: component %d: %v", ErrMalformed, i, err)
		}
		c[i] = v
	}
	return Quaternion{W: c[0], X: c[1], Y: c[2], Z: c[3]}, nil
}
