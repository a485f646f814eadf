// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/tableau/driver"
	"github.com/gviegas/tableau/engine/material"
	"github.com/gviegas/tableau/engine/mesh"
	"github.com/gviegas/tableau/engine/texture"
	"github.com/gviegas/tableau/scene"
)

type testTexture struct {
	unit      int
	destroyed bool
}

func (t *testTexture) Bind(unit int) error { t.unit = unit; return nil }
func (t *testTexture) Destroy()            { t.destroyed = true }

type testMesh struct {
	n      int
	ndraw  int
	ranges [][2]int
}

func (m *testMesh) Draw()    { m.ndraw++ }
func (m *testMesh) Len() int { return m.n }
func (m *testMesh) Destroy() {}
func (m *testMesh) DrawRange(first, count int) {
	m.ndraw++
	m.ranges = append(m.ranges, [2]int{first, count})
}

// testProgram records every uniform store, keyed by name.
type testProgram struct {
	uniform map[string]any
	inUse   bool
}

func (p *testProgram) Use()                               { p.inUse = true }
func (p *testProgram) SetFloat(name string, v float32)    { p.uniform[name] = v }
func (p *testProgram) SetInt(name string, v int32)        { p.uniform[name] = v }
func (p *testProgram) SetBool(name string, v bool)        { p.uniform[name] = v }
func (p *testProgram) SetVec2(name string, v [2]float32)  { p.uniform[name] = v }
func (p *testProgram) SetVec3(name string, v [3]float32)  { p.uniform[name] = v }
func (p *testProgram) SetVec4(name string, v [4]float32)  { p.uniform[name] = v }
func (p *testProgram) SetMat4(name string, v [16]float32) { p.uniform[name] = v }
func (p *testProgram) SetSampler(name string, unit int)   { p.uniform[name] = unit }
func (p *testProgram) Destroy()                           { p.inUse = false }

type testGPU struct {
	prog   *testProgram
	meshes []*testMesh
}

func (g *testGPU) NewTexture(width, height int, rgba []byte) (driver.Texture, error) {
	return &testTexture{unit: -1}, nil
}

func (g *testGPU) NewMesh(vert []float32, idx []uint32) (driver.Mesh, error) {
	m := &testMesh{n: len(idx)}
	g.meshes = append(g.meshes, m)
	return m, nil
}

func (g *testGPU) NewProgram(vertSrc, fragSrc string) (driver.Program, error) {
	g.prog = &testProgram{uniform: make(map[string]any)}
	return g.prog, nil
}

func (g *testGPU) Clear(r, gr, b, a float32) {}
func (g *testGPU) Viewport(width, height int) {}

func newTestRenderer(t *testing.T) (*Renderer, *testGPU) {
	t.Helper()
	gpu := &testGPU{}
	r, err := New(gpu)
	if err != nil {
		t.Fatalf("New failed:\n%#v", err)
	}
	return r, gpu
}

func TestNew(t *testing.T) {
	_, gpu := newTestRenderer(t)
	if !gpu.prog.inUse {
		t.Fatal("New: program not in use")
	}
	if v := gpu.prog.uniform["UVscale"]; v != ([2]float32{1, 1}) {
		t.Fatalf("UVscale:\nhave %v\nwant [1 1]", v)
	}
	if v := gpu.prog.uniform["bUseLighting"]; v != false {
		t.Fatalf("bUseLighting:\nhave %v\nwant false", v)
	}
}

func TestDrawFlatColor(t *testing.T) {
	r, gpu := newTestRenderer(t)
	err := r.Draw(DrawCall{
		Shape:     mesh.Box,
		Transform: Transform{Scale: mgl32.Vec3{1, 2, 3}},
		Shading:   FlatColor(1, 0, 0.5, 1),
	})
	if err != nil {
		t.Fatalf("Draw failed:\n%#v", err)
	}
	if v := gpu.prog.uniform["bUseTexture"]; v != false {
		t.Fatalf("bUseTexture:\nhave %v\nwant false", v)
	}
	if v := gpu.prog.uniform["objectColor"]; v != ([4]float32{1, 0, 0.5, 1}) {
		t.Fatalf("objectColor:\nhave %v\nwant [1 0 0.5 1]", v)
	}
	if _, ok := gpu.prog.uniform["model"]; !ok {
		t.Fatal("model matrix not set")
	}
	if n := len(gpu.meshes); n != 1 {
		t.Fatalf("meshes created:\nhave %d\nwant 1", n)
	}
	if n := gpu.meshes[0].ndraw; n != 1 {
		t.Fatalf("draws issued:\nhave %d\nwant 1", n)
	}
}

func TestDrawTextured(t *testing.T) {
	r, gpu := newTestRenderer(t)
	if err := r.textures.Add(image.NewRGBA(image.Rect(0, 0, 2, 2)), "marble"); err != nil {
		t.Fatalf("Add failed:\n%#v", err)
	}
	err := r.Draw(DrawCall{
		Shape:     mesh.Plane,
		Transform: Transform{Scale: mgl32.Vec3{10, 1, 10}},
		Shading:   Textured("marble").WithUVScale(2.25, 1),
	})
	if err != nil {
		t.Fatalf("Draw failed:\n%#v", err)
	}
	if v := gpu.prog.uniform["bUseTexture"]; v != true {
		t.Fatalf("bUseTexture:\nhave %v\nwant true", v)
	}
	unit, err := r.textures.Slot("marble")
	if err != nil {
		t.Fatalf("Slot failed:\n%#v", err)
	}
	if v := gpu.prog.uniform["objectTexture"]; v != unit {
		t.Fatalf("objectTexture:\nhave %v\nwant %d", v, unit)
	}
	if v := gpu.prog.uniform["UVscale"]; v != ([2]float32{2.25, 1}) {
		t.Fatalf("UVscale:\nhave %v\nwant [2.25 1]", v)
	}
}

// The UV scale must reset between draws rather than leak
// from a previous record.
func TestDrawUVScaleReset(t *testing.T) {
	r, gpu := newTestRenderer(t)
	calls := []DrawCall{
		{
			Shape:     mesh.Box,
			Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
			Shading:   FlatColor(1, 1, 1, 1).WithUVScale(0.5, 0.5),
		},
		{
			Shape:     mesh.Box,
			Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
			Shading:   FlatColor(1, 1, 1, 1),
		},
	}
	for _, c := range calls {
		if err := r.Draw(c); err != nil {
			t.Fatalf("Draw failed:\n%#v", err)
		}
	}
	if v := gpu.prog.uniform["UVscale"]; v != ([2]float32{1, 1}) {
		t.Fatalf("UVscale after plain draw:\nhave %v\nwant [1 1]", v)
	}
}

func TestDrawUnknownTexture(t *testing.T) {
	r, _ := newTestRenderer(t)
	err := r.Draw(DrawCall{
		Shape:     mesh.Box,
		Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		Shading:   Textured("nope"),
	})
	if !errors.Is(err, texture.ErrNoTexture) {
		t.Fatalf("Draw:\nhave %v\nwant %v", err, texture.ErrNoTexture)
	}
}

func TestDrawMaterial(t *testing.T) {
	r, gpu := newTestRenderer(t)
	felt := material.Material{
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.25},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess: 0.5,
	}
	if err := r.materials.Define("felt", felt); err != nil {
		t.Fatalf("Define failed:\n%#v", err)
	}
	err := r.Draw(DrawCall{
		Shape:     mesh.Box,
		Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		Shading:   FlatColor(0, 0, 1, 1).WithMaterial("felt"),
	})
	if err != nil {
		t.Fatalf("Draw failed:\n%#v", err)
	}
	if v := gpu.prog.uniform["material.diffuseColor"]; v != ([3]float32(felt.Diffuse)) {
		t.Fatalf("material.diffuseColor:\nhave %v\nwant %v", v, felt.Diffuse)
	}
	if v := gpu.prog.uniform["material.shininess"]; v != felt.Shininess {
		t.Fatalf("material.shininess:\nhave %v\nwant %v", v, felt.Shininess)
	}

	err = r.Draw(DrawCall{
		Shape:     mesh.Box,
		Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		Shading:   FlatColor(0, 0, 1, 1).WithMaterial("velvet"),
	})
	if !errors.Is(err, material.ErrNoMaterial) {
		t.Fatalf("Draw:\nhave %v\nwant %v", err, material.ErrNoMaterial)
	}
}

func TestDrawZeroScale(t *testing.T) {
	r, _ := newTestRenderer(t)
	err := r.Draw(DrawCall{
		Shape:     mesh.Box,
		Transform: Transform{Scale: mgl32.Vec3{1, 0, 1}},
		Shading:   FlatColor(1, 1, 1, 1),
	})
	if !errors.Is(err, ErrZeroScale) {
		t.Fatalf("Draw:\nhave %v\nwant %v", err, ErrZeroScale)
	}
}

func TestDrawParts(t *testing.T) {
	r, gpu := newTestRenderer(t)
	err := r.Draw(DrawCall{
		Shape:     mesh.Cylinder,
		Parts:     []mesh.Part{mesh.Bottom, mesh.Side},
		Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		Shading:   FlatColor(1, 1, 1, 1),
	})
	if err != nil {
		t.Fatalf("Draw failed:\n%#v", err)
	}
	m := gpu.meshes[0]
	if n := len(m.ranges); n != 2 {
		t.Fatalf("ranged draws:\nhave %d\nwant 2", n)
	}
}

func TestSetLights(t *testing.T) {
	r, gpu := newTestRenderer(t)
	err := r.SetLights(Lights{
		Points: []PointLight{{
			Position: mgl32.Vec3{-2, 5, -2},
			Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:  mgl32.Vec3{0.4, 0.4, 0.4},
			Specular: mgl32.Vec3{0.2, 0.2, 0.2},
		}},
		Spot: &SpotLight{
			Position:    mgl32.Vec3{0, 10, 0},
			Direction:   mgl32.Vec3{0, -1, 0},
			CutOff:      30,
			OuterCutOff: 42,
		},
	})
	if err != nil {
		t.Fatalf("SetLights failed:\n%#v", err)
	}
	u := gpu.prog.uniform
	if v := u["bUseLighting"]; v != true {
		t.Fatalf("bUseLighting:\nhave %v\nwant true", v)
	}
	if v := u["pointLights[0].bActive"]; v != true {
		t.Fatalf("pointLights[0].bActive:\nhave %v\nwant true", v)
	}
	// All-zero attenuation defaults to a constant term of 1.
	if v := u["pointLights[0].constant"]; v != float32(1) {
		t.Fatalf("pointLights[0].constant:\nhave %v\nwant 1", v)
	}
	for i := 1; i < MaxPointLight; i++ {
		if v := u[fmt.Sprintf("pointLights[%d].bActive", i)]; v != false {
			t.Fatalf("pointLights[%d].bActive:\nhave %v\nwant false", i, v)
		}
	}
	if v := u["directionalLight.bActive"]; v != false {
		t.Fatalf("directionalLight.bActive:\nhave %v\nwant false", v)
	}
	if v := u["spotLight.bActive"]; v != true {
		t.Fatalf("spotLight.bActive:\nhave %v\nwant true", v)
	}
	want := math32.Cos(mgl32.DegToRad(42))
	if v := u["spotLight.outerCutOff"]; v != want {
		t.Fatalf("spotLight.outerCutOff:\nhave %v\nwant %v", v, want)
	}
}

func TestSetLightsLimit(t *testing.T) {
	r, _ := newTestRenderer(t)
	err := r.SetLights(Lights{Points: make([]PointLight, MaxPointLight+1)})
	if !errors.Is(err, ErrLightLimit) {
		t.Fatalf("SetLights:\nhave %v\nwant %v", err, ErrLightLimit)
	}
}

func TestSetCamera(t *testing.T) {
	r, gpu := newTestRenderer(t)
	eye := mgl32.Vec3{0, 6.5, 9}
	r.SetCamera(Camera{Eye: eye, Target: mgl32.Vec3{0, 1, 0}}, 16.0/9)
	u := gpu.prog.uniform
	if v := u["viewPosition"]; v != ([3]float32(eye)) {
		t.Fatalf("viewPosition:\nhave %v\nwant %v", v, eye)
	}
	if _, ok := u["view"]; !ok {
		t.Fatal("view matrix not set")
	}
	if _, ok := u["projection"]; !ok {
		t.Fatal("projection matrix not set")
	}
}

const testScene = `
materials:
  - {tag: felt, diffuse: [0.2, 0.2, 0.25], specular: [0.1, 0.1, 0.1], shininess: 0.5}
lights:
  points:
    - {position: [-2, 5, -2], ambient: [0.1, 0.1, 0.1], diffuse: [0.4, 0.4, 0.4], specular: [0.2, 0.2, 0.2]}
  spot: {position: [0, 10, 0], direction: [0, -1, 0], cutoff: 30, outerCutoff: 42}
objects:
  - name: slab
    shape: plane
    scale: [10, 1, 10]
    position: [0, 0, 0]
    color: [0.5, 0.5, 0.5, 1]
    material: felt
  - name: lid
    shape: box
    parts: [top]
    scale: [1, 0.2, 1]
    rotate: [0, 45, 0]
    position: [0, 1, 0]
    color: [1, 0, 0, 1]
`

func TestPrepareRender(t *testing.T) {
	r, gpu := newTestRenderer(t)
	s, err := scene.Load(strings.NewReader(testScene))
	if err != nil {
		t.Fatalf("Load failed:\n%#v", err)
	}
	if err := r.Prepare(s, ""); err != nil {
		t.Fatalf("Prepare failed:\n%#v", err)
	}
	if n := r.materials.Len(); n != 1 {
		t.Fatalf("materials:\nhave %d\nwant 1", n)
	}
	if err := r.Render(s); err != nil {
		t.Fatalf("Render failed:\n%#v", err)
	}
	var ndraw int
	for _, m := range gpu.meshes {
		ndraw += m.ndraw
	}
	if ndraw != len(s.Objects) {
		t.Fatalf("draws issued:\nhave %d\nwant %d", ndraw, len(s.Objects))
	}
}

func TestClose(t *testing.T) {
	r, gpu := newTestRenderer(t)
	if err := r.textures.Add(image.NewRGBA(image.Rect(0, 0, 2, 2)), "marble"); err != nil {
		t.Fatalf("Add failed:\n%#v", err)
	}
	r.Close()
	if gpu.prog.inUse {
		t.Fatal("Close: program not destroyed")
	}
}
