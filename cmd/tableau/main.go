// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Tableau renders a declarative still-life scene in a
// window. With no arguments it shows the built-in wedding
// tabletop scene.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/tableau/driver"
	_ "github.com/gviegas/tableau/driver/gl"
	"github.com/gviegas/tableau/engine"
	"github.com/gviegas/tableau/scene"
)

// The graphics context is bound to the main thread.
func init() { runtime.LockOSThread() }

var (
	sceneFile = flag.String("scene", "", "scene description to render (default: built-in tabletop)")
	texDir    = flag.String("textures", ".", "directory that scene texture paths are relative to")
	drvName   = flag.String("driver", "gl", "graphics driver to use")
	width     = flag.Int("width", 1280, "initial window width")
	height    = flag.Int("height", 800, "initial window height")
	verbose   = flag.Bool("v", false, "log resource loading")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tableau: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	s := scene.Tabletop()
	if *sceneFile != "" {
		f, err := os.Open(*sceneFile)
		if err != nil {
			return err
		}
		s, err = scene.Load(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	title := s.Name
	if title == "" {
		title = "tableau"
	}
	win, err := glfw.CreateWindow(*width, *height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	drv, err := pickDriver(*drvName)
	if err != nil {
		return err
	}
	gpu, err := drv.Open()
	if err != nil {
		return err
	}
	defer drv.Close()

	r, err := engine.New(gpu)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := r.Prepare(s, *texDir); err != nil {
		return err
	}

	cam := engine.Camera{
		Eye:    mgl32.Vec3{0, 7, 12},
		Target: mgl32.Vec3{0, 1, -2},
	}
	for !win.ShouldClose() {
		w, h := win.GetFramebufferSize()
		gpu.Viewport(w, h)
		gpu.Clear(0.1, 0.1, 0.1, 1)
		r.SetCamera(cam, float32(w)/float32(h))
		if err := r.Render(s); err != nil {
			return err
		}
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func pickDriver(name string) (driver.Driver, error) {
	for _, drv := range driver.Drivers() {
		if drv.Name() == name {
			return drv, nil
		}
	}
	return nil, fmt.Errorf("no such driver: %q", name)
}
