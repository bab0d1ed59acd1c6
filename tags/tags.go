package tags

import "github.com/yohamta/donburi"

var (
	Ship       = donburi.NewTag().SetName("Ship")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")
	Asteroid   = donburi.NewTag().SetName("Asteroid")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Well       = donburi.NewTag().SetName("Well")
)
