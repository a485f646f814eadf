// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package driver defines a set of interfaces encompassing
// the GPU functionality that the rendering pipeline needs.
// It is designed to allow platform-specific APIs to be
// implemented in a mostly straightforward manner.
package driver

import (
	"errors"
	"log"
	"sync"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same GPU instance.
	// Callers should assume that Open is not safe for
	// parallel execution.
	Open() (GPU, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	// Callers should assume that Close is not safe for
	// parallel execution.
	Close()
}

// GPU is the device-level interface.
// All calls must happen on the thread that owns the
// graphics context; the pipeline is strictly sequential
// and assumes exclusive ownership for its duration.
type GPU interface {
	// NewTexture creates a 2D texture from tightly packed
	// RGBA8 data of the given dimensions.
	NewTexture(width, height int, rgba []byte) (Texture, error)

	// NewMesh creates an indexed triangle mesh.
	// vert is interleaved as position (3), normal (3) and
	// texture coordinates (2), VertexFloats floats per vertex.
	NewMesh(vert []float32, idx []uint32) (Mesh, error)

	// NewProgram compiles and links a shader program from
	// vertex/fragment stage sources.
	NewProgram(vertSrc, fragSrc string) (Program, error)

	// Clear clears the color and depth targets.
	Clear(r, g, b, a float32)

	// Viewport sets the drawable area in pixels.
	Viewport(width, height int)
}

// VertexFloats is the number of float32 values per vertex
// in the layout that NewMesh expects.
const VertexFloats = 8

// Texture is a GPU-resident 2D image.
type Texture interface {
	// Bind makes the texture current on the given
	// texture unit.
	Bind(unit int) error

	// Destroy frees the texture.
	Destroy()
}

// Mesh is a GPU-resident indexed triangle mesh.
type Mesh interface {
	// Draw draws the whole mesh.
	Draw()

	// DrawRange draws count indices starting at first.
	DrawRange(first, count int)

	// Len returns the number of indices.
	Len() int

	// Destroy frees the mesh buffers.
	Destroy()
}

// Program is a linked shader program with named uniforms.
// Setting a uniform that the program does not declare has
// no effect.
type Program interface {
	// Use makes the program current.
	Use()

	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetVec2(name string, v [2]float32)
	SetVec3(name string, v [3]float32)
	SetVec4(name string, v [4]float32)
	SetMat4(name string, v [16]float32)

	// SetSampler binds the named sampler uniform to a
	// texture unit.
	SetSampler(name string, unit int)

	// Destroy frees the program.
	Destroy()
}

// ErrNotInstalled means that a platform-specific library
// required for the driver to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoContext means that the calling thread has no
// current graphics context.
var ErrNoContext = errors.New("driver: no current context")

// ErrShader means that shader compilation or program
// linking failed.
var ErrShader = errors.New("driver: shader compilation failed")

// ErrInvalidArg means that a driver call received an
// argument outside the defined domain.
var ErrInvalidArg = errors.New("driver: invalid argument")

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// call this function from init. As such, drivers that do
// not register themselves on init will not be considered
// for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			log.Printf("[!] driver '%s' replaced", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	log.Printf("driver '%s' registered", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)
