package config

import "image/color"

// ArenaConfig contains world and simulation stepping values
type ArenaConfig struct {
	// World
	Width       float64
	Height      float64
	OuterMargin float64
	TileSize    float64

	// Stepping
	TickRate      int
	StatsInterval int // ticks between stats log lines
	DefaultShips  int
	Seed          uint64

	// Collision tuning
	MaxChunkLength float64 // Longest distance travelled between two exact probes
	TimeAccuracy   float64 // Bisection tolerance in seconds
	MaxMoveTries   int
	MaxSpeed       float64 // Hard speed cap for every body
	MinDamageDelta float64 // Velocity change below which impacts are harmless
	DamageScale    float64
	ColdDuration   float64 // Seconds a fresh projectile ignores its owner
	SpawnAttempts  int
}

// ShipConfig contains ship handling values
type ShipConfig struct {
	// Shape
	Radius float64
	Sides  int
	Mass   float64

	// Handling
	Thrust   float64 // Acceleration in units/s^2
	TurnRate float64 // Radians per second
	Drag     float64 // Speed lost per second when not thrusting

	// Combat
	Health       float64
	FireCooldown float64 // seconds
	GunOffset    float64 // Distance from centre projectiles spawn at
	RespawnDelay float64 // seconds

	// Pilot
	AimJitter   float64 // Radians of random aim error
	ReplanEvery float64 // seconds between pilot target choices
	FireRange   float64
}

// ProjectileConfig contains bullet values
type ProjectileConfig struct {
	Radius   float64
	Mass     float64
	Speed    float64
	Lifetime float64 // seconds
	Damage   float64
}

// AsteroidConfig contains drifting rock values
type AsteroidConfig struct {
	MinRadius float64
	MaxRadius float64
	Sides     int
	Density   float64 // Mass per unit of area
	MaxDrift  float64 // Initial speed upper bound
	Health    float64
	Count     int // Asteroids added to procedural arenas
}

// PickupConfig contains repair pickup values
type PickupConfig struct {
	Radius  float64
	Heal    float64
	Respawn float64 // seconds before a taken pickup returns
}

// WellConfig contains gravity well values
type WellConfig struct {
	Radius   float64
	Strength float64 // Negative pulls, positive pushes
}

// MoverConfig contains kinematic wall values
type MoverConfig struct {
	Duration float64 // Default seconds for one leg of the path
}

// ViewerConfig contains debug viewer values
type ViewerConfig struct {
	ScreenWidth  int
	ScreenHeight int
	ShipColors   []color.RGBA
	WallColor    color.RGBA
	ShowCells    bool
}

var Arena ArenaConfig
var Ship ShipConfig
var Projectile ProjectileConfig
var Asteroid AsteroidConfig
var Pickup PickupConfig
var Well WellConfig
var Mover MoverConfig
var Viewer ViewerConfig

func init() {
	// Arena Config
	Arena = ArenaConfig{
		// World
		Width:       2000,
		Height:      1500,
		OuterMargin: 200,
		TileSize:    32,

		// Stepping
		TickRate:      60,
		StatsInterval: 600, // every 10 seconds at 60 Hz
		DefaultShips:  4,
		Seed:          1,

		// Collision tuning
		MaxChunkLength: 4,
		TimeAccuracy:   0.0005,
		MaxMoveTries:   8,
		MaxSpeed:       3000,
		MinDamageDelta: 20,
		DamageScale:    0.01,
		ColdDuration:   0.25,
		SpawnAttempts:  64,
	}

	// Ship Config
	Ship = ShipConfig{
		// Shape
		Radius: 14,
		Sides:  3,
		Mass:   10,

		// Handling
		Thrust:   400,
		TurnRate: 3.5,
		Drag:     60,

		// Combat
		Health:       100,
		FireCooldown: 0.35,
		GunOffset:    20,
		RespawnDelay: 2,

		// Pilot
		AimJitter:   0.08,
		ReplanEvery: 1.5,
		FireRange:   600,
	}

	// Projectile Config
	Projectile = ProjectileConfig{
		Radius:   3,
		Mass:     0.5,
		Speed:    900,
		Lifetime: 2,
		Damage:   12,
	}

	// Asteroid Config
	Asteroid = AsteroidConfig{
		MinRadius: 18,
		MaxRadius: 48,
		Sides:     7,
		Density:   0.02,
		MaxDrift:  60,
		Health:    80,
		Count:     12,
	}

	// Pickup Config
	Pickup = PickupConfig{
		Radius:  10,
		Heal:    35,
		Respawn: 8,
	}

	// Well Config
	Well = WellConfig{
		Radius:   160,
		Strength: -350,
	}

	// Mover Config
	Mover = MoverConfig{
		Duration: 3,
	}

	// Viewer Config
	Viewer = ViewerConfig{
		ScreenWidth:  1280,
		ScreenHeight: 960,
		ShipColors: []color.RGBA{
			{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff},
			{R: 0xff, G: 0x8a, B: 0x65, A: 0xff},
			{R: 0xae, G: 0xd5, B: 0x81, A: 0xff},
			{R: 0xf0, G: 0x62, B: 0x92, A: 0xff},
		},
		WallColor: color.RGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff},
		ShowCells: false,
	}
}
