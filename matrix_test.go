// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package transitivity

import "testing"

func TestDenseBitMatrixGetSet(t *testing.T) {
	m := NewDenseBitMatrix(4)
	if m.Get(0, 1) {
		t.Fatal("fresh matrix should have no set bits")
	}
	m.Set(0, 1, true)
	if !m.Get(0, 1) {
		t.Fatal("Get should reflect a prior Set")
	}
	m.Set(0, 1, false)
	if m.Get(0, 1) {
		t.Fatal("Get should reflect a prior Set(false)")
	}
}

func TestClosureMatchesReaches(t *testing.T) {
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {},
	}
	dg := al.AsDigraph()
	dense := Closure(dg)
	cc := BuildCompactClosure(dg)
	for u := NI(0); u <= 2; u++ {
		for v := NI(0); v <= 2; v++ {
			if dense.Get(u, v) != cc.Reaches(u, v) {
				t.Errorf("Closure and Reaches disagree at (%d,%d)", u, v)
			}
		}
	}
}

func TestCompactMatrixSetPanics(t *testing.T) {
	cc := BuildCompactClosure(AdjacencyList{0: {}}.AsDigraph())
	m := CompactClosureMatrix(cc)
	defer func() {
		if recover() == nil {
			t.Fatal("Set on a CompactMatrix should panic")
		}
	}()
	m.Set(0, 0, true)
}
