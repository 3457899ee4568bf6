package systems

import (
	"fmt"

	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/fonts"
	"github.com/automoto/construct/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the mode, the last physics outcome and the player's
// velocity in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	lines := []string{hudStatus(level)}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		vel := components.Actor.Get(playerEntry).Velocity
		lines = append(lines, fmt.Sprintf("vx %5.1f  vy %5.1f", vel.VX, vel.VY))
	}
	if level.ShowHitboxes {
		lines = append(lines, "hitboxes (F1)")
	}

	face := fonts.HUD.Get()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin + cfg.UI.HUDLineHeight)
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.White)
		y += int(cfg.UI.HUDLineHeight)
	}
}

func hudStatus(level *components.LevelData) string {
	name := "?"
	if level.Source != nil {
		name = level.Source.Name
	}
	state := level.Last.State.String()
	if level.Last.Skipped {
		state = "skipped"
	}
	return fmt.Sprintf("%s  %s  %s", name, level.Mode, state)
}
