package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/doomerang-arena/collision"
	"github.com/quasilyte/gdata"
)

// SavedTuning is the collision tuning stored on disk. Zero fields keep the
// built-in value.
type SavedTuning struct {
	MaxChunkLength float64 `json:"maxChunkLength,omitempty"`
	TimeAccuracy   float64 `json:"timeAccuracy,omitempty"`
	MaxMoveTries   int     `json:"maxMoveTries,omitempty"`
	MaxSpeed       float64 `json:"maxSpeed,omitempty"`
	MinDamageDelta float64 `json:"minDamageDelta,omitempty"`
	DamageScale    float64 `json:"damageScale,omitempty"`
	ColdDuration   float64 `json:"coldDuration,omitempty"`
	SpawnAttempts  int     `json:"spawnAttempts,omitempty"`
	Seed           uint64  `json:"seed,omitempty"`
}

const tuningKey = "tuning"

var tuningManager *gdata.Manager

// InitTuning opens the gdata store used for tuning.
func InitTuning(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[tuning] Could not open store: %v", err)
		return fmt.Errorf("open tuning store: %w", err)
	}
	tuningManager = m
	return nil
}

// LoadTuning returns the saved tuning, or nil when nothing was saved or the
// store is not open.
func LoadTuning() (*SavedTuning, error) {
	if tuningManager == nil {
		return nil, nil
	}

	data, err := tuningManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("[tuning] Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	return &t, nil
}

// SaveTuning writes t to the store.
func SaveTuning(t *SavedTuning) error {
	if tuningManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := tuningManager.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// CurrentTuning captures a collision config as tuning.
func CurrentTuning(c collision.Config) *SavedTuning {
	return &SavedTuning{
		MaxChunkLength: c.MaxChunkLength,
		TimeAccuracy:   c.TimeAccuracy,
		MaxMoveTries:   c.MaxMoveTries,
		MaxSpeed:       c.MaxSpeed,
		MinDamageDelta: c.MinDamageDelta,
		DamageScale:    c.DamageScale,
		ColdDuration:   c.ColdDuration,
		SpawnAttempts:  c.SpawnAttempts,
		Seed:           c.Seed,
	}
}

// ApplyTuning overlays the non-zero fields of t on c.
func ApplyTuning(c *collision.Config, t *SavedTuning) {
	if t == nil {
		return
	}
	if t.MaxChunkLength > 0 {
		c.MaxChunkLength = t.MaxChunkLength
	}
	if t.TimeAccuracy > 0 {
		c.TimeAccuracy = t.TimeAccuracy
	}
	if t.MaxMoveTries > 0 {
		c.MaxMoveTries = t.MaxMoveTries
	}
	if t.MaxSpeed > 0 {
		c.MaxSpeed = t.MaxSpeed
	}
	if t.MinDamageDelta > 0 {
		c.MinDamageDelta = t.MinDamageDelta
	}
	if t.DamageScale > 0 {
		c.DamageScale = t.DamageScale
	}
	if t.ColdDuration > 0 {
		c.ColdDuration = t.ColdDuration
	}
	if t.SpawnAttempts > 0 {
		c.SpawnAttempts = t.SpawnAttempts
	}
	if t.Seed != 0 {
		c.Seed = t.Seed
	}
}
