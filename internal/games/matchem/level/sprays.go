package level

import (
	"github.com/vovakirdan/matchem-poker/internal/particle"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

func newSprays(g *Grid) Sprays {
	return Sprays{
		Score: &particle.SprayType{
			FirstBlock:  tile.BuildIndex(tile.TexFont, 10, 0),
			LifeTime:    1,
			Size:        1.0 / 8,
			AngleRandom: 10,
			Text:        g,
		},
		Smoke: &particle.SprayType{
			FirstBlock:     tile.BuildIndex(tile.TexParticle, 0, 0),
			LifeTime:       1.0 / 4,
			LifeTimeRandom: 1.0 / 4,
			Size:           1.0 / 16,
			SizeRandom:     1.0 / 16,
			SizeInc:        1.0 / 4,
			SizeIncRandom:  1.0 / 8,
			AngleIncRandom: 1,
		},
		Sparkle: &particle.SprayType{
			FirstBlock:     tile.BuildIndex(tile.TexParticle, 2, 0),
			Gravity:        80000.0 / 65536,
			Fraction:       3000.0 / 65536,
			LifeTime:       0.5,
			LifeTimeRandom: 80536.0 / 65536,
			Size:           1.0 / 20,
			SizeRandom:     1.0 / 16,
			SizeInc:        -9000.0 / 65536,
			SizeIncRandom:  6000.0 / 65536,
			AngleIncRandom: 1,
			RenderMode:     1,
		},
		Fruit: &particle.SprayType{
			FirstBlock:     tile.BuildIndex(tile.TexPieces, 0, 0),
			BlockCount:     8,
			Gravity:        164000.0 / 65536,
			Fraction:       4000.0 / 65536,
			LifeTime:       1,
			LifeTimeRandom: 1,
			Size:           1.0 / 10,
			SizeRandom:     1.0 / 10,
			SizeInc:        -5500.0 / 65536,
			SizeIncRandom:  4000.0 / 65536,
			AngleRandom:    6,
			AngleInc:       -12,
			AngleIncRandom: 24,
		},
		Morph: &particle.SprayType{
			FirstBlock:     tile.BuildIndex(tile.TexParticle, 3, 0),
			Fraction:       2000.0 / 65536,
			LifeTime:       1.0 / 3,
			LifeTimeRandom: 1.0 / 8,
			Size:           1.0 / 2,
			SizeInc:        -32000.0 / 65536,
			AngleRandom:    1,
			AngleIncRandom: 16000.0 / 65536,
			RenderMode:     1,
		},
	}
}
