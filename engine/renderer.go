// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package engine implements the fixed rendering pipeline:
// a single Phong program, registries for textures and
// materials, a primitive mesh library and the draw loop
// that ties them together.
package engine

import (
	"errors"
	"fmt"

	"github.com/gviegas/tableau/driver"
	"github.com/gviegas/tableau/engine/internal/shader"
	"github.com/gviegas/tableau/engine/material"
	"github.com/gviegas/tableau/engine/mesh"
	"github.com/gviegas/tableau/engine/texture"
)

const prefix = "engine: "

// Errors returned by the renderer.
var (
	// ErrZeroScale means that a draw call's transform has
	// a zero scale component, which would collapse the
	// object and break normal transformation.
	ErrZeroScale = errors.New(prefix + "zero scale component")

	// ErrLightLimit means that a light setup defines more
	// point lights than the pipeline supports.
	ErrLightLimit = errors.New(prefix + "too many point lights")
)

// Renderer owns the GPU resources of the pipeline and
// issues draws. It must be used from the thread that owns
// the graphics context.
type Renderer struct {
	gpu       driver.GPU
	prog      driver.Program
	textures  *texture.Cache
	materials *material.Registry
	meshes    *mesh.Lib
}

// New creates a Renderer on the given GPU. It compiles
// the pipeline's shader program and leaves it current.
func New(gpu driver.GPU) (*Renderer, error) {
	prog, err := gpu.NewProgram(shader.VertSrc, shader.FragSrc)
	if err != nil {
		return nil, fmt.Errorf(prefix+"program: %w", err)
	}
	prog.Use()
	prog.SetVec2(shader.UVScale, [2]float32{1, 1})
	prog.SetBool(shader.UseLighting, false)
	texs := texture.NewCache(gpu)
	texs.SetLogger(logger())
	return &Renderer{
		gpu:       gpu,
		prog:      prog,
		textures:  texs,
		materials: material.NewRegistry(),
		meshes:    mesh.NewLib(gpu),
	}, nil
}

// Textures returns the renderer's texture cache.
func (r *Renderer) Textures() *texture.Cache { return r.textures }

// Materials returns the renderer's material registry.
func (r *Renderer) Materials() *material.Registry { return r.materials }

// Meshes returns the renderer's mesh library.
func (r *Renderer) Meshes() *mesh.Lib { return r.meshes }

// DrawCall fully describes one draw. There is no state
// carried over between calls: every field takes effect on
// every call.
type DrawCall struct {
	Shape     mesh.Shape
	Parts     []mesh.Part
	Transform Transform
	Shading   Shading
}

// Draw validates c, uploads its per-draw uniforms and
// draws the selected primitive (or the selected parts of
// it).
func (r *Renderer) Draw(c DrawCall) error {
	for _, v := range c.Transform.Scale {
		if v == 0 {
			return fmt.Errorf("%w: %v", ErrZeroScale, c.Transform.Scale)
		}
	}
	r.prog.SetMat4(shader.Model, c.Transform.Matrix())

	switch c.Shading.kind {
	case flatColor:
		r.prog.SetBool(shader.UseTexture, false)
		r.prog.SetVec4(shader.Color, c.Shading.color)
	case textured:
		unit, err := r.textures.Slot(c.Shading.texture)
		if err != nil {
			return err
		}
		r.prog.SetBool(shader.UseTexture, true)
		r.prog.SetSampler(shader.Sampler, unit)
	}
	r.prog.SetVec2(shader.UVScale, c.Shading.uv())

	if tag := c.Shading.material; tag != "" {
		m, err := r.materials.Lookup(tag)
		if err != nil {
			return err
		}
		r.prog.SetVec3(shader.MaterialDiffuse, m.Diffuse)
		r.prog.SetVec3(shader.MaterialSpecular, m.Specular)
		r.prog.SetFloat(shader.MaterialShininess, m.Shininess)
	}

	return r.meshes.Draw(c.Shape, c.Parts...)
}

// Close frees every GPU resource the renderer owns.
func (r *Renderer) Close() {
	r.meshes.Close()
	r.textures.Close()
	r.prog.Destroy()
}
