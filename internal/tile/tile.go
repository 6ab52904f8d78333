// Package tile defines the drawing and sound-cue contracts between the game
// simulation and whatever backend presents it.
//
// A tile is a sub-rectangle of a texture atlas, addressed by a packed Index.
// Coordinates passed to a Renderer are normalized: x runs 0..1 across the
// screen width and y uses the same unit.
package tile

// TextureID names a texture atlas.
type TextureID uint8

const (
	TexLogo           TextureID = 1
	TexPieces         TextureID = 2
	TexPiecesSelected TextureID = 3
	TexFontScore      TextureID = 4
	TexGradient       TextureID = 5
	TexMeter          TextureID = 6
	TexMeterBase      TextureID = 7
	TexParticle       TextureID = 8
	TexFont           TextureID = 9
	TexBackground     TextureID = 10
	TexExtra          TextureID = 11
)

// Index packs a sub-tile number, a texture id and a fade level.
// Bits 0..15 hold the sub-tile, 16..23 the texture and 24..31 the fade,
// where 0 is opaque and 255 invisible.
type Index uint32

// BuildIndex packs the three fields into an Index.
func BuildIndex(tex TextureID, sub int, fade int) Index {
	return Index(uint32(sub)&0xFFFF | (uint32(tex)&0xFF)<<16 | (uint32(fade)&0xFF)<<24)
}

// Texture returns the texture atlas the tile belongs to.
func (i Index) Texture() TextureID { return TextureID(i >> 16 & 0xFF) }

// Sub returns the tile number within its atlas.
func (i Index) Sub() int { return int(i & 0xFFFF) }

// Fade returns the fade level, 0 opaque to 255 invisible.
func (i Index) Fade() int { return int(i >> 24) }

// WithFade returns a copy of i with the fade level replaced.
func (i Index) WithFade(fade int) Index {
	return i&0x00FFFFFF | Index(uint32(fade)&0xFF)<<24
}

// Renderer draws atlas tiles. Angle is in radians, mode selects the blend
// mode (0 normal, 1 additive) and arg is backend specific.
type Renderer interface {
	RenderTile(x, y, w, h, angle float64, mode int, idx Index, arg int)
}

// EffectSink receives sound and feedback cues.
type EffectSink interface {
	EffectNotify(e Effect, arg1, arg2 int)
}

// Nop discards every tile and effect.
type Nop struct{}

// RenderTile implements Renderer.
func (Nop) RenderTile(x, y, w, h, angle float64, mode int, idx Index, arg int) {}

// EffectNotify implements EffectSink.
func (Nop) EffectNotify(e Effect, arg1, arg2 int) {}
