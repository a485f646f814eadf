// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package texture loads scene textures and maps their
// tags to bound texture units.
package texture

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gviegas/tableau/driver"
	"github.com/gviegas/tableau/internal/bitm"
)

const prefix = "texture: "

// MaxUnits is the number of texture units available for
// scene textures.
const MaxUnits = 16

// ErrNoTexture means that no texture with the given tag
// was registered.
var ErrNoTexture = errors.New(prefix + "no such texture")

// ErrDupTag means that a texture with the given tag was
// already registered.
var ErrDupTag = errors.New(prefix + "duplicate tag")

// ErrUnitLimit means that all MaxUnits texture units are
// taken.
var ErrUnitLimit = errors.New(prefix + "texture unit limit reached")

// ErrChannels means that the image's channel count is
// not supported.
var ErrChannels = errors.New(prefix + "unsupported channel count")

// Cache owns the GPU textures of a scene and assigns each
// one a texture unit at registration time.
// Tags are unique; registering a colliding tag fails
// instead of shadowing the previous entry.
type Cache struct {
	gpu     driver.GPU
	log     *slog.Logger
	entries map[string]*entry
	units   bitm.Bitm[uint16]
}

type entry struct {
	tex  driver.Texture
	unit int
}

// NewCache creates an empty cache backed by gpu.
func NewCache(gpu driver.GPU) *Cache {
	c := &Cache{
		gpu:     gpu,
		log:     slog.Default(),
		entries: make(map[string]*entry),
	}
	c.units.Grow(MaxUnits / 16)
	return c
}

// SetLogger replaces the cache's logger.
// Passing nil restores the default logger.
func (c *Cache) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	c.log = l
}

// LoadFile decodes the image file at path and registers
// it under tag.
func (c *Cache) LoadFile(path, tag string) error {
	f, err := os.Open(path)
	if err != nil {
		c.log.Warn("texture: cannot open image", "path", path, "err", err)
		return fmt.Errorf(prefix+"%w", err)
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		c.log.Warn("texture: cannot decode image", "path", path, "err", err)
		return err
	}
	if err := c.Add(m, tag); err != nil {
		return err
	}
	b := m.Bounds()
	c.log.Info("texture: image loaded", "path", path, "tag", tag, "width", b.Dx(), "height", b.Dy())
	return nil
}

// Add uploads a decoded image and registers it under tag.
func (c *Cache) Add(m *image.RGBA, tag string) error {
	if _, ok := c.entries[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDupTag, tag)
	}
	unit, ok := c.units.Search()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnitLimit, tag)
	}
	b := m.Bounds()
	tex, err := c.gpu.NewTexture(b.Dx(), b.Dy(), m.Pix)
	if err != nil {
		c.units.Unset(unit)
		return err
	}
	c.entries[tag] = &entry{tex: tex, unit: unit}
	return nil
}

// Slot returns the texture unit assigned to tag.
func (c *Cache) Slot(tag string) (int, error) {
	e, ok := c.entries[tag]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNoTexture, tag)
	}
	return e.unit, nil
}

// BindAll binds every registered texture to its assigned
// unit. It is called once after scene setup; the bindings
// stay in place for the whole render pass.
func (c *Cache) BindAll() error {
	for tag, e := range c.entries {
		if err := e.tex.Bind(e.unit); err != nil {
			return fmt.Errorf(prefix+"bind %q: %w", tag, err)
		}
	}
	return nil
}

// Len returns the number of registered textures.
func (c *Cache) Len() int { return len(c.entries) }

// Close destroys every registered texture.
func (c *Cache) Close() {
	for tag, e := range c.entries {
		e.tex.Destroy()
		c.units.Unset(e.unit)
		delete(c.entries, tag)
	}
}
