// cmd/table_viewer/main.go
//
// Статичный просмотрщик стола на raylib: стены, жёлобы, бамперы и сектора
// хода флипперов. Удобен при подборе раскладки в internal/defs без запуска
// самой игры.
package main

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/defs"
)

// toRL преобразует стандартный color.RGBA в rl.Color
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func main() {
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Neon Pinball — table viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	wall := toRL(config.WallColor)
	gutter := toRL(config.GutterColor)

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))

		// Стены поля.
		rl.DrawLineEx(rl.NewVector2(config.PlayfieldLeft, config.PlayfieldTop), rl.NewVector2(config.PlayfieldRight, config.PlayfieldTop), 4, wall)
		rl.DrawLineEx(rl.NewVector2(config.PlayfieldLeft, config.PlayfieldTop), rl.NewVector2(config.PlayfieldLeft, config.ScreenHeight), 4, wall)
		rl.DrawLineEx(rl.NewVector2(config.PlayfieldRight, config.PlayfieldTop), rl.NewVector2(config.PlayfieldRight, config.ScreenHeight), 4, wall)

		for _, g := range defs.TableGutters {
			rl.DrawLineEx(rl.NewVector2(float32(g.X1), float32(g.Y1)), rl.NewVector2(float32(g.X2), float32(g.Y2)), 5, gutter)
		}

		for _, b := range defs.TableBumpers {
			col := toRL(b.Color)
			rl.DrawCircleLines(int32(b.X), int32(b.Y), float32(b.Radius), col)
			rl.DrawText(fmt.Sprintf("%d", b.Points), int32(b.X)-12, int32(b.Y)-5, 10, col)
		}

		// Сектор хода каждого флиппера: дуга от Rest до Swung.
		for _, f := range defs.TableFlippers {
			for _, ang := range []float64{f.Rest, f.Swung} {
				tx := f.PivotX + math.Cos(ang)*f.Length
				ty := f.PivotY + math.Sin(ang)*f.Length
				rl.DrawLineEx(rl.NewVector2(float32(f.PivotX), float32(f.PivotY)), rl.NewVector2(float32(tx), float32(ty)), 3, rl.SkyBlue)
			}
			rl.DrawCircle(int32(f.PivotX), int32(f.PivotY), 4, rl.SkyBlue)
		}

		rl.DrawText("defs.TableBumpers / TableGutters / TableFlippers", 30, config.ScreenHeight-24, 10, rl.Gray)
		rl.EndDrawing()
	}
}
