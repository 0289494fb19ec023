package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// Color 线条或填充颜色
// Color of a line or a fill
type Color struct {
	name    string
	r, g, b uint8
}

var (
	Black       = Color{name: "black"}
	Blue        = Color{name: "blue"}
	Cyan        = Color{name: "cyan"}
	DarkViolet  = Color{name: "dark-violet"}
	ForestGreen = Color{name: "forest-green"}
	Gold        = Color{name: "gold"}
	Gray        = Color{name: "gray"}
	Green       = Color{name: "green"}
	Magenta     = Color{name: "magenta"}
	Red         = Color{name: "red"}
	White       = Color{name: "white"}
	Yellow      = Color{name: "yellow"}
)

var namedColors = []Color{
	Black, Blue, Cyan, DarkViolet, ForestGreen, Gold, Gray, Green, Magenta, Red, White, Yellow,
}

// RGB returns a custom color
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// ParseColor 解析颜色名称或 #rrggbb 格式
// ParseColor accepts a color name ("red", "dark-violet") or "#rrggbb"
func ParseColor(value string) (Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, value)
		}
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, value)
		}
		return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)), nil
	}

	for _, color := range namedColors {
		if color.name == value {
			return color, nil
		}
	}

	return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, value)
}

// LineType 线型
// LineType is the dash pattern of a line
type LineType int

const (
	SmallDot LineType = iota
	Solid
	Dash
	Dot
	DotDash
	DotDotDash
)

func (l LineType) String() string {
	return strconv.Itoa(int(l))
}

// Terminal 输出终端
// Terminal is the gnuplot output device
type Terminal string

const (
	SVG  Terminal = "svg dynamic"
	PNG  Terminal = "pngcairo"
	Dumb Terminal = "dumb"
)

// ParseTerminal accepts "svg", "png" or "dumb".
func ParseTerminal(name string) (Terminal, error) {
	switch strings.ToLower(name) {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	case "dumb":
		return Dumb, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidTerminal, name)
}
