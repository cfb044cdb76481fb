package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrEmptyColor 颜色名为空
var ErrEmptyColor = errors.New("empty color name")

// ParseColor 将颜色名或十六进制串解析为 RGBA
//
// 支持：
//   - SVG/X11 颜色名，忽略大小写和空格（"sea green" 与 "seagreen" 等价）
//   - "#rgb" 和 "#rrggbb"
func ParseColor(name string) (color.RGBA, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return color.RGBA{}, ErrEmptyColor
	}

	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}

	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", name)
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
