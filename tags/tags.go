package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Floor    = donburi.NewTag().SetName("Floor")
	Building = donburi.NewTag().SetName("Building")
	Flag     = donburi.NewTag().SetName("Flag")
)
