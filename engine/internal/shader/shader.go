// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package shader holds the pipeline's GLSL sources and
// the uniform names shared between the Go side and the
// shaders.
package shader

import (
	_ "embed"
	"strconv"
)

// Shader stage sources.
var (
	//go:embed scene.vert
	VertSrc string

	//go:embed scene.frag
	FragSrc string
)

// MaxPointLight is the size of the point light array in
// the fragment shader.
const MaxPointLight = 4

// Uniform names.
const (
	Model      = "model"
	View       = "view"
	Projection = "projection"
	ViewPos    = "viewPosition"

	Color       = "objectColor"
	Sampler     = "objectTexture"
	UseTexture  = "bUseTexture"
	UseLighting = "bUseLighting"
	UVScale     = "UVscale"

	MaterialDiffuse   = "material.diffuseColor"
	MaterialSpecular  = "material.specularColor"
	MaterialShininess = "material.shininess"
)

// Directional returns the name of a directional light
// uniform field.
func Directional(field string) string { return "directionalLight." + field }

// Point returns the name of a point light uniform field.
func Point(i int, field string) string {
	return "pointLights[" + strconv.Itoa(i) + "]." + field
}

// Spot returns the name of a spot light uniform field.
func Spot(field string) string { return "spotLight." + field }
