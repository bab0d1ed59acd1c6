package config

import (
	"testing"

	"github.com/automoto/doomerang-arena/collision"
)

func TestCollision_BuildsValidEngine(t *testing.T) {
	c := Collision(Arena.Width, Arena.Height)
	if _, err := collision.NewEngine(c, nil); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if c.Boundary.Margin != Arena.OuterMargin {
		t.Errorf("margin = %v, want %v", c.Boundary.Margin, Arena.OuterMargin)
	}

	// The returned config must not alias the package tables.
	c.Materials[MaterialHull].Elasticity = 99
	c.CellSizes[AreaShip] = 1
	if Materials[MaterialHull].Elasticity == 99 || CellSizes[AreaShip] == 1 {
		t.Errorf("Collision() shares storage with package tables")
	}
}

func TestCollision_NoTunnelingChunk(t *testing.T) {
	// Chunks must not be longer than the smallest moving shape is wide.
	if Arena.MaxChunkLength > 2*Projectile.Radius {
		t.Errorf("chunk %v longer than projectile diameter %v", Arena.MaxChunkLength, 2*Projectile.Radius)
	}
}

func TestApplyTuning(t *testing.T) {
	c := Collision(Arena.Width, Arena.Height)
	ApplyTuning(&c, &SavedTuning{MaxChunkLength: 2, MaxMoveTries: 3, Seed: 42})

	if c.MaxChunkLength != 2 || c.MaxMoveTries != 3 || c.Seed != 42 {
		t.Errorf("overlay not applied: %+v", c)
	}
	if c.TimeAccuracy != Arena.TimeAccuracy || c.MaxSpeed != Arena.MaxSpeed {
		t.Errorf("zero fields must keep defaults: accuracy %v speed %v", c.TimeAccuracy, c.MaxSpeed)
	}

	before := c
	ApplyTuning(&c, nil)
	if c.MaxChunkLength != before.MaxChunkLength {
		t.Errorf("nil tuning changed the config")
	}
}

func TestCurrentTuning(t *testing.T) {
	c := Collision(Arena.Width, Arena.Height)
	saved := CurrentTuning(c)
	c2 := Collision(Arena.Width, Arena.Height)
	c2.MaxChunkLength = 100
	ApplyTuning(&c2, saved)
	if c2.MaxChunkLength != c.MaxChunkLength {
		t.Errorf("MaxChunkLength = %v, want %v", c2.MaxChunkLength, c.MaxChunkLength)
	}
}

func TestLoadTuning_WithoutStore(t *testing.T) {
	got, err := LoadTuning()
	if got != nil || err != nil {
		t.Errorf("LoadTuning without a store = %v, %v; want nil, nil", got, err)
	}
	if err := SaveTuning(&SavedTuning{}); err != nil {
		t.Errorf("SaveTuning without a store: %v", err)
	}
}
