// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package driver

import "testing"

type stubDriver struct {
	name   string
	opened bool
}

func (d *stubDriver) Open() (GPU, error) { d.opened = true; return nil, nil }
func (d *stubDriver) Name() string       { return d.name }
func (d *stubDriver) Close()             { d.opened = false }

func TestRegister(t *testing.T) {
	a := &stubDriver{name: "stub-a"}
	b := &stubDriver{name: "stub-b"}
	Register(a)
	Register(b)

	var na, nb int
	for _, d := range Drivers() {
		switch d.Name() {
		case "stub-a":
			na++
		case "stub-b":
			nb++
		}
	}
	if na != 1 || nb != 1 {
		t.Fatalf("Drivers\nhave %d/%d\nwant 1/1", na, nb)
	}
}

func TestRegisterReplace(t *testing.T) {
	a1 := &stubDriver{name: "stub-dup"}
	a2 := &stubDriver{name: "stub-dup"}
	Register(a1)
	Register(a2)

	var n int
	var last Driver
	for _, d := range Drivers() {
		if d.Name() == "stub-dup" {
			n++
			last = d
		}
	}
	if n != 1 {
		t.Fatalf("Drivers\nhave %d entries for 'stub-dup'\nwant 1", n)
	}
	if last != Driver(a2) {
		t.Fatal("Register did not replace the previous driver")
	}
}
