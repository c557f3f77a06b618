package core

// Color is a semantic foreground color for a screen cell.
// Frontends translate it to terminal styles or RGBA values.
type Color uint8

// Palette entries used by the renderers.
const (
	ColorDefault  Color = iota
	ColorPlayer         // #FF6B6B
	ColorObstacle       // #4ECDC4
	ColorGround         // #8B4513
	ColorSky            // #87CEEB
	ColorParticle       // #FFD93D
	ColorHUD            // #FFFFFF
	ColorAccent         // #FFE66D
	ColorDim            // #808080
)

// Hex returns the palette entry as a #RRGGBB string.
// ColorDefault returns an empty string, meaning "terminal default".
func (c Color) Hex() string {
	switch c {
	case ColorPlayer:
		return "#FF6B6B"
	case ColorObstacle:
		return "#4ECDC4"
	case ColorGround:
		return "#8B4513"
	case ColorSky:
		return "#87CEEB"
	case ColorParticle:
		return "#FFD93D"
	case ColorHUD:
		return "#FFFFFF"
	case ColorAccent:
		return "#FFE66D"
	case ColorDim:
		return "#808080"
	default:
		return ""
	}
}

// RGB returns the palette entry as 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	hex := c.Hex()
	if len(hex) != 7 {
		return 0xFF, 0xFF, 0xFF
	}
	return hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7])
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		ch := s[i]
		v <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'A' && ch <= 'F':
			v |= ch - 'A' + 10
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		}
	}
	return v
}
