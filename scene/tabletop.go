// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed tabletop.yaml
var tabletopSrc []byte

var tabletopOnce = sync.OnceValue(func() *Scene {
	s, err := Load(bytes.NewReader(tabletopSrc))
	if err != nil {
		panic(err)
	}
	return s
})

// Tabletop returns the built-in wedding tabletop scene.
// The returned value is shared; callers must not mutate
// it.
func Tabletop() *Scene { return tabletopOnce() }
