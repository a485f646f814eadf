// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/tableau/engine/internal/shader"
)

// MaxPointLight is the number of point lights the
// pipeline supports.
const MaxPointLight = shader.MaxPointLight

// DirectionalLight lights the scene from a direction,
// infinitely far away.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// PointLight lights the scene from a position, attenuated
// by distance. A light whose attenuation terms are all
// zero is treated as unattenuated (constant term 1).
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// SpotLight is a point light restricted to a cone.
// CutOff and OuterCutOff are half-angles in degrees.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32
}

// Lights is a complete light setup. Nil/empty fields
// leave the corresponding light inactive.
type Lights struct {
	Directional *DirectionalLight
	Points      []PointLight
	Spot        *SpotLight
}

func attenuation(constant, linear, quadratic float32) (c, l, q float32) {
	if constant == 0 && linear == 0 && quadratic == 0 {
		return 1, 0, 0
	}
	return constant, linear, quadratic
}

// SetLights uploads l and enables lighting. Inactive
// slots are switched off explicitly, so calling SetLights
// again replaces the previous setup entirely.
func (r *Renderer) SetLights(l Lights) error {
	if n := len(l.Points); n > MaxPointLight {
		return fmt.Errorf("%w: %d point lights (max %d)", ErrLightLimit, n, MaxPointLight)
	}
	r.prog.SetBool(shader.UseLighting, true)

	if d := l.Directional; d != nil {
		r.prog.SetVec3(shader.Directional("direction"), d.Direction)
		r.prog.SetVec3(shader.Directional("ambient"), d.Ambient)
		r.prog.SetVec3(shader.Directional("diffuse"), d.Diffuse)
		r.prog.SetVec3(shader.Directional("specular"), d.Specular)
		r.prog.SetBool(shader.Directional("bActive"), true)
	} else {
		r.prog.SetBool(shader.Directional("bActive"), false)
	}

	for i := 0; i < MaxPointLight; i++ {
		if i >= len(l.Points) {
			r.prog.SetBool(shader.Point(i, "bActive"), false)
			continue
		}
		p := &l.Points[i]
		c, lin, q := attenuation(p.Constant, p.Linear, p.Quadratic)
		r.prog.SetVec3(shader.Point(i, "position"), p.Position)
		r.prog.SetVec3(shader.Point(i, "ambient"), p.Ambient)
		r.prog.SetVec3(shader.Point(i, "diffuse"), p.Diffuse)
		r.prog.SetVec3(shader.Point(i, "specular"), p.Specular)
		r.prog.SetFloat(shader.Point(i, "constant"), c)
		r.prog.SetFloat(shader.Point(i, "linear"), lin)
		r.prog.SetFloat(shader.Point(i, "quadratic"), q)
		r.prog.SetBool(shader.Point(i, "bActive"), true)
	}

	if s := l.Spot; s != nil {
		c, lin, q := attenuation(s.Constant, s.Linear, s.Quadratic)
		r.prog.SetVec3(shader.Spot("position"), s.Position)
		r.prog.SetVec3(shader.Spot("direction"), s.Direction)
		r.prog.SetVec3(shader.Spot("ambient"), s.Ambient)
		r.prog.SetVec3(shader.Spot("diffuse"), s.Diffuse)
		r.prog.SetVec3(shader.Spot("specular"), s.Specular)
		r.prog.SetFloat(shader.Spot("constant"), c)
		r.prog.SetFloat(shader.Spot("linear"), lin)
		r.prog.SetFloat(shader.Spot("quadratic"), q)
		// The shader compares against cosines.
		r.prog.SetFloat(shader.Spot("cutOff"), math32.Cos(mgl32.DegToRad(s.CutOff)))
		r.prog.SetFloat(shader.Spot("outerCutOff"), math32.Cos(mgl32.DegToRad(s.OuterCutOff)))
		r.prog.SetBool(shader.Spot("bActive"), true)
	} else {
		r.prog.SetBool(shader.Spot("bActive"), false)
	}
	return nil
}
