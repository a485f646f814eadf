// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places one draw in world space.
// Rotation angles are in degrees; any real value is
// accepted and wraps naturally.
type Transform struct {
	Scale            mgl32.Vec3
	RotX, RotY, RotZ float32
	Position         mgl32.Vec3
}

// Matrix composes the transform into a single model
// matrix as Translation * RotationZ * RotationY *
// RotationX * Scale.
// The order is fixed; reordering changes the result for
// any object rotated on more than one axis at once.
func (t Transform) Matrix() mgl32.Mat4 {
	s := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotY))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotZ))
	tr := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	return tr.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
