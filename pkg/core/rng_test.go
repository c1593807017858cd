package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatal("same seed produced different draws")
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewEntropyRNG()
	for i := 0; i < 1000; i++ {
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
		if r.Chance(-0.1) {
			t.Fatal("negative chance must never succeed")
		}
	}
}
