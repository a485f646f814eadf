// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tableau/driver"
)

// Tessellation constants.
// nsegment applies to round cross-sections; nstack and
// nslice to spheres; the torus uses nring around the
// main axis and ntube around the tube.
const (
	nsegment = 36
	nstack   = 16
	nslice   = 32
	nring    = 36
	ntube    = 18
)

type builder struct {
	vert []float32
	idx  []uint32
}

func (b *builder) vtx(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	b.vert = append(b.vert, px, py, pz, nx, ny, nz, u, v)
	return uint32(len(b.vert)/driver.VertexFloats - 1)
}

func (b *builder) tri(i, j, k uint32) { b.idx = append(b.idx, i, j, k) }

func (b *builder) data(parts map[Part]Range) *Data {
	return &Data{Vert: b.vert, Idx: b.idx, Parts: parts}
}

// genPlane generates a 2x2 quad in the XZ plane at y=0,
// facing +Y.
func genPlane() *Data {
	var b builder
	a := b.vtx(-1, 0, -1, 0, 1, 0, 0, 0)
	c := b.vtx(1, 0, -1, 0, 1, 0, 1, 0)
	d := b.vtx(1, 0, 1, 0, 1, 0, 1, 1)
	e := b.vtx(-1, 0, 1, 0, 1, 0, 0, 1)
	b.tri(a, d, c)
	b.tri(a, e, d)
	return b.data(nil)
}

// genBox generates a unit cube centered at the origin.
// Each face is an index range addressable as a Part.
func genBox() *Data {
	type face struct {
		p        Part
		n, ax, ay [3]float32
	}
	faces := [6]face{
		{Front, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{Back, [3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{Left, [3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{Right, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{Top, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{Bottom, [3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}
	signs := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var b builder
	parts := make(map[Part]Range, 6)
	for _, f := range faces {
		first := len(b.idx)
		var id [4]uint32
		for i := range id {
			px := 0.5 * (f.n[0] + signs[i][0]*f.ax[0] + signs[i][1]*f.ay[0])
			py := 0.5 * (f.n[1] + signs[i][0]*f.ax[1] + signs[i][1]*f.ay[1])
			pz := 0.5 * (f.n[2] + signs[i][0]*f.ax[2] + signs[i][1]*f.ay[2])
			id[i] = b.vtx(px, py, pz, f.n[0], f.n[1], f.n[2], uvs[i][0], uvs[i][1])
		}
		b.tri(id[0], id[1], id[2])
		b.tri(id[0], id[2], id[3])
		parts[f.p] = Range{First: first, Count: 6}
	}
	return b.data(parts)
}

// genNgon generates an n-sided prismatic solid with base
// radius rb at y=0 and top radius rt at y=1. It covers
// cylinders (rb == rt), cones (rt == 0), tapered
// cylinders, triangular prisms (n == 3) and hexagons
// (n == 6). Caps exist only for non-zero radii.
func genNgon(n int, rb, rt float32) *Data {
	var b builder
	parts := make(map[Part]Range, 3)

	// Side wall, with a duplicated seam column for UVs.
	// The lateral normal leans by the taper slope.
	first := len(b.idx)
	ny := rb - rt
	for i := 0; i <= n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		c, s := math32.Cos(theta), math32.Sin(theta)
		inv := 1 / math32.Sqrt(c*c+ny*ny+s*s)
		u := float32(i) / float32(n)
		b.vtx(rb*c, 0, rb*s, c*inv, ny*inv, s*inv, u, 0)
		b.vtx(rt*c, 1, rt*s, c*inv, ny*inv, s*inv, u, 1)
	}
	for i := 0; i < n; i++ {
		b0 := uint32(2 * i)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		b.tri(b0, b1, t1)
		b.tri(b0, t1, t0)
	}
	parts[Side] = Range{First: first, Count: len(b.idx) - first}

	cap_ := func(y, r, nrm float32, p Part) {
		first := len(b.idx)
		center := b.vtx(0, y, 0, 0, nrm, 0, 0.5, 0.5)
		ring := make([]uint32, n)
		for i := 0; i < n; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(n)
			c, s := math32.Cos(theta), math32.Sin(theta)
			ring[i] = b.vtx(r*c, y, r*s, 0, nrm, 0, (c+1)/2, (s+1)/2)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if nrm > 0 {
				b.tri(center, ring[j], ring[i])
			} else {
				b.tri(center, ring[i], ring[j])
			}
		}
		parts[p] = Range{First: first, Count: len(b.idx) - first}
	}
	if rt > 0 {
		cap_(1, rt, 1, Top)
	}
	if rb > 0 {
		cap_(0, rb, -1, Bottom)
	}
	return b.data(parts)
}

// genSphere generates a unit sphere centered at the
// origin, or the upper hemisphere resting on y=0.
func genSphere(half bool) *Data {
	stacks := nstack
	maxPhi := math32.Pi
	if half {
		stacks = nstack / 2
		maxPhi = math32.Pi / 2
	}
	var b builder
	for i := 0; i <= stacks; i++ {
		phi := maxPhi * float32(i) / float32(stacks)
		sp, cp := math32.Sin(phi), math32.Cos(phi)
		for j := 0; j <= nslice; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(nslice)
			st, ct := math32.Sin(theta), math32.Cos(theta)
			x, y, z := sp*ct, cp, sp*st
			b.vtx(x, y, z, x, y, z, float32(j)/nslice, float32(i)/float32(stacks))
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < nslice; j++ {
			a := uint32(i*(nslice+1) + j)
			c := a + nslice + 1
			b.tri(a, c, c+1)
			b.tri(a, c+1, a+1)
		}
	}
	return b.data(nil)
}

// genTorus generates a torus around the Y axis with ring
// radius 1 and tube radius 0.25.
func genTorus() *Data {
	const rTube = 0.25
	var b builder
	for i := 0; i <= nring; i++ {
		u := 2 * math32.Pi * float32(i) / nring
		su, cu := math32.Sin(u), math32.Cos(u)
		for j := 0; j <= ntube; j++ {
			v := 2 * math32.Pi * float32(j) / ntube
			sv, cv := math32.Sin(v), math32.Cos(v)
			px := (1 + rTube*cv) * cu
			py := rTube * sv
			pz := (1 + rTube*cv) * su
			b.vtx(px, py, pz, cv*cu, sv, cv*su, float32(i)/nring, float32(j)/ntube)
		}
	}
	for i := 0; i < nring; i++ {
		for j := 0; j < ntube; j++ {
			a := uint32(i*(ntube+1) + j)
			c := a + ntube + 1
			b.tri(a, c, c+1)
			b.tri(a, c+1, a+1)
		}
	}
	return b.data(nil)
}

// genPyramid generates a 4-sided pyramid with a unit
// square base at y=-0.5 and the apex at y=0.5.
func genPyramid() *Data {
	corners := [4][3]float32{
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
	}
	apex := [3]float32{0, 0.5, 0}

	var b builder
	parts := make(map[Part]Range, 2)

	first := len(b.idx)
	for i := range corners {
		p0 := corners[i]
		p1 := corners[(i+1)%4]
		n := faceNormal(p0, p1, apex)
		a := b.vtx(p0[0], p0[1], p0[2], n[0], n[1], n[2], 0, 0)
		c := b.vtx(p1[0], p1[1], p1[2], n[0], n[1], n[2], 1, 0)
		d := b.vtx(apex[0], apex[1], apex[2], n[0], n[1], n[2], 0.5, 1)
		b.tri(a, c, d)
	}
	parts[Side] = Range{First: first, Count: len(b.idx) - first}

	first = len(b.idx)
	var id [4]uint32
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	for i, p := range corners {
		id[i] = b.vtx(p[0], p[1], p[2], 0, -1, 0, uvs[i][0], uvs[i][1])
	}
	b.tri(id[0], id[1], id[2])
	b.tri(id[0], id[2], id[3])
	parts[Bottom] = Range{First: first, Count: len(b.idx) - first}
	return b.data(parts)
}

// faceNormal computes the unit normal of the triangle
// p0-p1-p2 with counter-clockwise winding.
func faceNormal(p0, p1, p2 [3]float32) [3]float32 {
	ux, uy, uz := p1[0]-p0[0], p1[1]-p0[1], p1[2]-p0[2]
	vx, vy, vz := p2[0]-p0[0], p2[1]-p0[1], p2[2]-p0[2]
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
	return [3]float32{nx * inv, ny * inv, nz * inv}
}
