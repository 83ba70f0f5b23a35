package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/diamond-terrain/internal/engine/terrain"
)

func TestComputeBounds(t *testing.T) {
	got := computeBounds([]mgl32.Vec3{
		{-1, 2, 3},
		{4, -5, 0},
		{0, 1, -6},
	})

	want := Bounds{Min: mgl32.Vec3{-1, -5, -6}, Max: mgl32.Vec3{4, 2, 3}}
	if got != want {
		t.Errorf("computeBounds() = %+v, want %+v", got, want)
	}

	if computeBounds(nil) != (Bounds{}) {
		t.Error("expected zero bounds for empty input")
	}
}

func TestLogSinkUpload(t *testing.T) {
	sink := &logSink{}
	g := terrain.NewGenerator(sink, terrain.NewSeededSource(11))

	if _, err := g.Regenerate(terrain.Params{Divisions: 8, Size: 10, MaxHeight: 0}); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	want := Bounds{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 0, 5}}
	if sink.last != want {
		t.Errorf("bounds = %+v, want %+v", sink.last, want)
	}
}
