// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/tableau/engine/internal/shader"
)

// Camera is a perspective view of the scene. Zero-valued
// fields get sensible defaults: Up defaults to +Y, FOVY
// to 45 degrees and the clip planes to 0.1/100.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Vertical field of view, in degrees.
	FOVY float32

	Near float32
	Far  float32
}

func (c Camera) withDefaults() Camera {
	if c.Up == (mgl32.Vec3{}) {
		c.Up = mgl32.Vec3{0, 1, 0}
	}
	if c.FOVY == 0 {
		c.FOVY = 45
	}
	if c.Near == 0 {
		c.Near = 0.1
	}
	if c.Far == 0 {
		c.Far = 100
	}
	return c
}

// SetCamera uploads the view/projection pair for c, with
// the given viewport aspect ratio (width over height).
func (r *Renderer) SetCamera(c Camera, aspect float32) {
	c = c.withDefaults()
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOVY), aspect, c.Near, c.Far)
	r.prog.SetMat4(shader.View, [16]float32(view))
	r.prog.SetMat4(shader.Projection, [16]float32(proj))
	r.prog.SetVec3(shader.ViewPos, c.Eye)
}
