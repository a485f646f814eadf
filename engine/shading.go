// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

type shadingKind int

const (
	flatColor shadingKind = iota
	textured
)

// Shading selects how one draw is colored: either a flat
// RGBA color or a registered texture, never both.
// The zero value is opaque black.
type Shading struct {
	kind     shadingKind
	color    mgl32.Vec4
	texture  string
	uvScale  mgl32.Vec2
	hasUV    bool
	material string
}

// FlatColor returns a Shading that draws with a flat
// color and texturing disabled.
func FlatColor(r, g, b, a float32) Shading {
	return Shading{kind: flatColor, color: mgl32.Vec4{r, g, b, a}}
}

// Textured returns a Shading that draws with the texture
// registered under tag.
func Textured(tag string) Shading {
	return Shading{kind: textured, texture: tag}
}

// WithUVScale returns a copy of s that samples texture
// coordinates scaled by u, v. The default is 1, 1.
func (s Shading) WithUVScale(u, v float32) Shading {
	s.uvScale = mgl32.Vec2{u, v}
	s.hasUV = true
	return s
}

// WithMaterial returns a copy of s that applies the
// material registered under tag.
func (s Shading) WithMaterial(tag string) Shading {
	s.material = tag
	return s
}

func (s Shading) uv() mgl32.Vec2 {
	if !s.hasUV {
		return mgl32.Vec2{1, 1}
	}
	return s.uvScale
}
