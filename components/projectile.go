package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Owner     int
	Damage    float64
	ExpiresAt float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
