package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a local transform: position, Euler rotation in radians applied in XYZ order and
// scale. The zero value is not the identity; use Identity.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.RotationMatrix()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// RotationMatrix returns the rotation part of Matrix.
func (t Transform) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(t.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(t.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation[2]))
}

// Field names one vector of a Transform.
type Field int

const (
	Position Field = iota
	Rotation
	Scale
)

func (f Field) String() string {
	switch f {
	case Position:
		return "position"
	case Rotation:
		return "rotation"
	case Scale:
		return "scale"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps "position", "rotation" or "scale" to a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(s) {
	case "position":
		return Position, nil
	case "rotation":
		return Rotation, nil
	case "scale":
		return Scale, nil
	}
	return 0, fmt.Errorf("unknown transform field %q", s)
}

// ParseAxis maps "x", "y" or "z" to 0, 1 or 2.
func ParseAxis(s string) (int, error) {
	switch strings.ToLower(s) {
	case "x":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		return 2, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Set writes one component. Rotation values are given in degrees and stored in radians.
func (t *Transform) Set(f Field, axis int, value float32) {
	switch f {
	case Position:
		t.Position[axis] = value
	case Rotation:
		t.Rotation[axis] = mgl32.DegToRad(value)
	case Scale:
		t.Scale[axis] = value
	}
}

// RotationDegrees returns the rotation converted to degrees for display.
func (t Transform) RotationDegrees() mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.RadToDeg(t.Rotation[0]),
		mgl32.RadToDeg(t.Rotation[1]),
		mgl32.RadToDeg(t.Rotation[2]),
	}
}
