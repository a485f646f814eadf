// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package material implements the Phong material model
// used by the renderer and the tag registry that scene
// records resolve against.
package material

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const prefix = "material: "

// ErrNoMaterial means that no material with the given
// tag was defined.
var ErrNoMaterial = errors.New(prefix + "no such material")

// ErrDupTag means that a material with the given tag was
// already defined.
var ErrDupTag = errors.New(prefix + "duplicate tag")

// Material describes how a surface responds to lighting.
type Material struct {
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Registry maps tags to materials.
// Entries are defined once during scene setup and are
// read-only during rendering.
type Registry struct {
	m map[string]Material
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]Material)}
}

// Define registers a material under tag.
// Defining a tag twice is an error; the first definition
// stays in effect.
func (r *Registry) Define(tag string, m Material) error {
	if _, ok := r.m[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDupTag, tag)
	}
	r.m[tag] = m
	return nil
}

// Lookup returns the material registered under tag.
// Unlike the usual silent-sentinel registries of fixed
// pipelines, a missing tag is a real error here so that
// draw calls cannot proceed with stale material state.
func (r *Registry) Lookup(tag string) (Material, error) {
	m, ok := r.m[tag]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNoMaterial, tag)
	}
	return m, nil
}

// Len returns the number of defined materials.
func (r *Registry) Len() int { return len(r.m) }
