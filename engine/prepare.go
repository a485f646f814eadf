// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"
	"path/filepath"

	"github.com/gviegas/tableau/engine/material"
	"github.com/gviegas/tableau/engine/mesh"
	"github.com/gviegas/tableau/scene"
)

// Prepare loads everything s needs to render: textures
// (image files resolved relative to dir), materials and
// lights. It fails on the first resource that cannot be
// loaded.
func (r *Renderer) Prepare(s *scene.Scene, dir string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, t := range s.Textures {
		if err := r.textures.LoadFile(filepath.Join(dir, t.File), t.Tag); err != nil {
			return err
		}
	}
	if err := r.textures.BindAll(); err != nil {
		return err
	}
	for _, m := range s.Materials {
		err := r.materials.Define(m.Tag, material.Material{
			Diffuse:   m.Diffuse,
			Specular:  m.Specular,
			Shininess: m.Shininess,
		})
		if err != nil {
			return err
		}
	}
	return r.SetLights(convLights(s.Lights))
}

// Render replays every draw record of s, in order. The
// scene must have been prepared first.
func (r *Renderer) Render(s *scene.Scene) error {
	for i := range s.Objects {
		o := &s.Objects[i]
		c, err := drawCall(o)
		if err == nil {
			err = r.Draw(c)
		}
		if err != nil {
			return fmt.Errorf(prefix+"object %d (%s): %w", i, o.Name, err)
		}
	}
	return nil
}

func drawCall(o *scene.Object) (DrawCall, error) {
	shape, err := mesh.ParseShape(o.Shape)
	if err != nil {
		return DrawCall{}, err
	}
	var parts []mesh.Part
	if len(o.Parts) > 0 {
		parts = make([]mesh.Part, len(o.Parts))
		for i, s := range o.Parts {
			if parts[i], err = mesh.ParsePart(s); err != nil {
				return DrawCall{}, err
			}
		}
	}
	var shd Shading
	if o.Texture != "" {
		shd = Textured(o.Texture)
	} else {
		if len(o.Color) != 4 {
			return DrawCall{}, fmt.Errorf(prefix+"color has %d components (want 4)", len(o.Color))
		}
		shd = FlatColor(o.Color[0], o.Color[1], o.Color[2], o.Color[3])
	}
	if o.UVScale != nil {
		shd = shd.WithUVScale(o.UVScale[0], o.UVScale[1])
	}
	if o.Material != "" {
		shd = shd.WithMaterial(o.Material)
	}
	return DrawCall{
		Shape: shape,
		Parts: parts,
		Transform: Transform{
			Scale:    o.Scale,
			RotX:     o.Rotate[0],
			RotY:     o.Rotate[1],
			RotZ:     o.Rotate[2],
			Position: o.Position,
		},
		Shading: shd,
	}, nil
}

func convLights(l scene.Lights) Lights {
	var out Lights
	if d := l.Directional; d != nil {
		out.Directional = &DirectionalLight{
			Direction: d.Direction,
			Ambient:   d.Ambient,
			Diffuse:   d.Diffuse,
			Specular:  d.Specular,
		}
	}
	for _, p := range l.Points {
		out.Points = append(out.Points, PointLight{
			Position:  p.Position,
			Ambient:   p.Ambient,
			Diffuse:   p.Diffuse,
			Specular:  p.Specular,
			Constant:  p.Constant,
			Linear:    p.Linear,
			Quadratic: p.Quadratic,
		})
	}
	if s := l.Spot; s != nil {
		out.Spot = &SpotLight{
			Position:    s.Position,
			Direction:   s.Direction,
			Ambient:     s.Ambient,
			Diffuse:     s.Diffuse,
			Specular:    s.Specular,
			Constant:    s.Constant,
			Linear:      s.Linear,
			Quadratic:   s.Quadratic,
			CutOff:      s.CutOff,
			OuterCutOff: s.OuterCutOff,
		}
	}
	return out
}
