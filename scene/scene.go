// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package scene defines declarative scene descriptions:
// which textures and materials a scene uses, how it is
// lit, and the flat list of draw records that the
// renderer replays every frame.
package scene

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/tableau/engine/mesh"
)

const prefix = "scene: "

// TextureRef names an image file to load and the tag
// that draw records use to refer to it.
type TextureRef struct {
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

// Material defines a named Phong material.
type Material struct {
	Tag       string     `yaml:"tag"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// DirectionalLight is a light infinitely far away.
type DirectionalLight struct {
	Direction [3]float32 `yaml:"direction"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
}

// PointLight is a positional light with distance
// attenuation.
type PointLight struct {
	Position  [3]float32 `yaml:"position"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Constant  float32    `yaml:"constant,omitempty"`
	Linear    float32    `yaml:"linear,omitempty"`
	Quadratic float32    `yaml:"quadratic,omitempty"`
}

// SpotLight is a positional light restricted to a cone.
// The cutoff angles are in degrees.
type SpotLight struct {
	Position    [3]float32 `yaml:"position"`
	Direction   [3]float32 `yaml:"direction"`
	Ambient     [3]float32 `yaml:"ambient"`
	Diffuse     [3]float32 `yaml:"diffuse"`
	Specular    [3]float32 `yaml:"specular"`
	Constant    float32    `yaml:"constant,omitempty"`
	Linear      float32    `yaml:"linear,omitempty"`
	Quadratic   float32    `yaml:"quadratic,omitempty"`
	CutOff      float32    `yaml:"cutoff"`
	OuterCutOff float32    `yaml:"outerCutoff"`
}

// MaxPointLight is the number of point lights a scene
// may define.
const MaxPointLight = 4

// Lights is the scene's light setup.
type Lights struct {
	Directional *DirectionalLight `yaml:"directional,omitempty"`
	Points      []PointLight      `yaml:"points,omitempty"`
	Spot        *SpotLight        `yaml:"spot,omitempty"`
}

// Object is one draw record: a primitive (or some of its
// parts), a transform, and either a flat color or a
// texture tag, with an optional material.
// Rotation angles are in degrees and apply in X, Y, Z
// order.
type Object struct {
	Name     string      `yaml:"name,omitempty"`
	Shape    string      `yaml:"shape"`
	Parts    []string    `yaml:"parts,omitempty"`
	Scale    [3]float32  `yaml:"scale"`
	Rotate   [3]float32  `yaml:"rotate,omitempty"`
	Position [3]float32  `yaml:"position"`
	Color    []float32   `yaml:"color,omitempty"`
	Texture  string      `yaml:"texture,omitempty"`
	UVScale  *[2]float32 `yaml:"uvscale,omitempty"`
	Material string      `yaml:"material,omitempty"`
}

// Scene is a complete scene description.
type Scene struct {
	Name      string       `yaml:"name,omitempty"`
	Textures  []TextureRef `yaml:"textures,omitempty"`
	Materials []Material   `yaml:"materials,omitempty"`
	Lights    Lights       `yaml:"lights,omitempty"`
	Objects   []Object     `yaml:"objects"`
}

// Load reads a YAML scene description and validates it.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf(prefix+"decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the internal consistency of s: tags
// must be unique, every reference must resolve within
// the description, every object must select exactly one
// of flat color and texture, and scales must not contain
// zero components.
func (s *Scene) Validate() error {
	texs := make(map[string]bool, len(s.Textures))
	for _, t := range s.Textures {
		if t.Tag == "" || t.File == "" {
			return errors.New(prefix + "texture with empty tag or file")
		}
		if texs[t.Tag] {
			return fmt.Errorf(prefix+"duplicate texture tag %q", t.Tag)
		}
		texs[t.Tag] = true
	}
	mats := make(map[string]bool, len(s.Materials))
	for _, m := range s.Materials {
		if m.Tag == "" {
			return errors.New(prefix + "material with empty tag")
		}
		if mats[m.Tag] {
			return fmt.Errorf(prefix+"duplicate material tag %q", m.Tag)
		}
		mats[m.Tag] = true
	}
	if n := len(s.Lights.Points); n > MaxPointLight {
		return fmt.Errorf(prefix+"%d point lights (max %d)", n, MaxPointLight)
	}

	for i, o := range s.Objects {
		where := fmt.Sprintf(prefix+"object %d (%s)", i, o.Name)
		if _, err := mesh.ParseShape(o.Shape); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		for _, p := range o.Parts {
			if _, err := mesh.ParsePart(p); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
		}
		hasColor := len(o.Color) > 0
		hasTex := o.Texture != ""
		switch {
		case hasColor && hasTex:
			return fmt.Errorf("%s: both color and texture set", where)
		case !hasColor && !hasTex:
			return fmt.Errorf("%s: neither color nor texture set", where)
		case hasColor && len(o.Color) != 4:
			return fmt.Errorf("%s: color has %d components (want 4)", where, len(o.Color))
		case hasTex && !texs[o.Texture]:
			return fmt.Errorf("%s: undefined texture %q", where, o.Texture)
		}
		if o.Material != "" && !mats[o.Material] {
			return fmt.Errorf("%s: undefined material %q", where, o.Material)
		}
		for _, v := range o.Scale {
			if v == 0 {
				return fmt.Errorf("%s: zero scale component", where)
			}
		}
	}
	return nil
}
