// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package mesh provides the predefined mesh primitives
// that the renderer draws, and keeps one GPU-resident
// copy of each.
package mesh

import (
	"errors"

	"github.com/gviegas/tableau/driver"
)

const prefix = "mesh: "

func newErr(s string) error { return errors.New(prefix + s) }

// Shape identifies a mesh primitive.
type Shape int

const (
	Box Shape = iota
	Plane
	Cylinder
	Cone
	Sphere
	HalfSphere
	Torus
	Prism
	Pyramid
	TaperedCylinder
	Hexagon
	nshape
)

var shapeNames = [nshape]string{
	Box:             "box",
	Plane:           "plane",
	Cylinder:        "cylinder",
	Cone:            "cone",
	Sphere:          "sphere",
	HalfSphere:      "half-sphere",
	Torus:           "torus",
	Prism:           "prism",
	Pyramid:         "pyramid",
	TaperedCylinder: "tapered-cylinder",
	Hexagon:         "hexagon",
}

// String returns the name of s, as accepted by ParseShape.
func (s Shape) String() string {
	if s < 0 || s >= nshape {
		return "invalid shape"
	}
	return shapeNames[s]
}

// ParseShape converts a shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return -1, newErr("unknown shape \"" + name + "\"")
}

// Part identifies a drawable subset of a primitive.
// Box supports the six face parts; cylinder-like shapes
// support Top, Bottom and Side.
type Part int

const (
	Top Part = iota
	Bottom
	Side
	Front
	Back
	Left
	Right
	npart
)

var partNames = [npart]string{
	Top:    "top",
	Bottom: "bottom",
	Side:   "side",
	Front:  "front",
	Back:   "back",
	Left:   "left",
	Right:  "right",
}

// String returns the name of p, as accepted by ParsePart.
func (p Part) String() string {
	if p < 0 || p >= npart {
		return "invalid part"
	}
	return partNames[p]
}

// ParsePart converts a part name into a Part.
func ParsePart(name string) (Part, error) {
	for i, n := range partNames {
		if n == name {
			return Part(i), nil
		}
	}
	return -1, newErr("unknown part \"" + name + "\"")
}

// Range is a contiguous index range within a primitive.
type Range struct {
	First, Count int
}

// Data is a generated primitive: interleaved vertices
// (position, normal, texture coordinates), triangle
// indices and the named index ranges of its parts.
type Data struct {
	Vert  []float32
	Idx   []uint32
	Parts map[Part]Range
}

// Generate produces the vertex data for a primitive.
func Generate(s Shape) (*Data, error) {
	switch s {
	case Box:
		return genBox(), nil
	case Plane:
		return genPlane(), nil
	case Cylinder:
		return genNgon(nsegment, 1, 1), nil
	case Cone:
		return genNgon(nsegment, 1, 0), nil
	case Sphere:
		return genSphere(false), nil
	case HalfSphere:
		return genSphere(true), nil
	case Torus:
		return genTorus(), nil
	case Prism:
		return genNgon(3, 1, 1), nil
	case Pyramid:
		return genPyramid(), nil
	case TaperedCylinder:
		return genNgon(nsegment, 1, 0.5), nil
	case Hexagon:
		return genNgon(6, 1, 1), nil
	}
	return nil, newErr("unknown shape")
}

// Lib keeps GPU-resident primitives, loading each lazily
// on first draw. Only one copy of a primitive exists no
// matter how many times it is drawn per frame.
type Lib struct {
	gpu driver.GPU
	res map[Shape]*resident
}

type resident struct {
	mesh  driver.Mesh
	parts map[Part]Range
}

// NewLib creates an empty library backed by gpu.
func NewLib(gpu driver.GPU) *Lib {
	return &Lib{gpu: gpu, res: make(map[Shape]*resident, int(nshape))}
}

func (l *Lib) load(s Shape) (*resident, error) {
	if r, ok := l.res[s]; ok {
		return r, nil
	}
	d, err := Generate(s)
	if err != nil {
		return nil, err
	}
	m, err := l.gpu.NewMesh(d.Vert, d.Idx)
	if err != nil {
		return nil, err
	}
	r := &resident{mesh: m, parts: d.Parts}
	l.res[s] = r
	return r, nil
}

// Draw draws a primitive, or only the given parts of it.
// It returns an error if the primitive does not define
// one of the requested parts.
func (l *Lib) Draw(s Shape, parts ...Part) error {
	r, err := l.load(s)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		r.mesh.Draw()
		return nil
	}
	for _, p := range parts {
		rng, ok := r.parts[p]
		if !ok {
			return newErr("shape " + s.String() + " has no part " + p.String())
		}
		r.mesh.DrawRange(rng.First, rng.Count)
	}
	return nil
}

// Close destroys every resident primitive.
func (l *Lib) Close() {
	for s, r := range l.res {
		r.mesh.Destroy()
		delete(l.res, s)
	}
}
