package mahjong

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// 静态表
var singleTileMap = map[rune]Tile{
	// 风
	'东': TileDong,
	'南': TileNan,
	'西': TileXi,
	'北': TileBei,
	// 箭
	'白': TileBai,
	'发': TileFa,
	'中': TileZhong,
}

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'筒': ColorDot,
	'条': ColorBamboo,
}

// 紧凑写法的花色后缀
var suffixToColor = map[byte]EColor{
	'm': ColorCharacter,
	'p': ColorDot,
	's': ColorBamboo,
}

// ParseTiles 解析手牌，支持两种写法：
//
//	紧凑写法 "123m456p11s77z"（z 为字牌 1-7：东南西北白发中）
//	名称写法 "1万,2万,3筒,中"
func ParseTiles(s string) ([]Tile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Tile{}, nil
	}
	if strings.Contains(s, ",") || strings.ContainsAny(s, "万筒条东南西北白发中") {
		return namesToTiles(s)
	}
	return compactToTiles(s)
}

// ParseTile 解析单张牌
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return TileNull, err
	}
	if len(tiles) != 1 {
		return TileNull, fmt.Errorf("%w: %q is not a single tile", ErrParse, s)
	}
	return tiles[0], nil
}

func compactToTiles(s string) ([]Tile, error) {
	var res []Tile
	var points []int
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			points = append(points, int(ch-'0'))
		case ch == ' ':
		default:
			if len(points) == 0 {
				return nil, fmt.Errorf("%w: suffix %q without digits", ErrParse, ch)
			}
			for _, v := range points {
				t, err := compactTile(ch, v)
				if err != nil {
					return nil, err
				}
				res = append(res, t)
			}
			points = points[:0]
		}
	}
	if len(points) > 0 {
		return nil, fmt.Errorf("%w: %q misses a suit suffix", ErrParse, s)
	}
	return res, nil
}

func compactTile(suffix byte, value int) (Tile, error) {
	if suffix == 'z' {
		if value < 1 || value > 7 {
			return TileNull, fmt.Errorf("%w: honor %dz", ErrInvalidTile, value)
		}
		return HonorTile(value), nil
	}
	color, ok := suffixToColor[suffix]
	if !ok {
		return TileNull, fmt.Errorf("%w: unknown suffix %q", ErrParse, suffix)
	}
	if value < 1 || value > 9 {
		return TileNull, fmt.Errorf("%w: %d%c", ErrInvalidTile, value, suffix)
	}
	return MakeTile(color, value-1), nil
}

func namesToTiles(names string) ([]Tile, error) {
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t := nameToTile(name)
		if t == TileNull {
			return nil, fmt.Errorf("%w: unknown tile name %q", ErrParse, name)
		}
		res = append(res, t)
	}
	return res, nil
}

func nameToTile(name string) Tile {
	if name == "" {
		return TileNull
	}

	r, size := utf8.DecodeRuneInString(name)
	if size == len(name) {
		if t, ok := singleTileMap[r]; ok {
			return t
		}
		return TileNull
	}

	r, size = utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	num, err := strconv.Atoi(name[:len(name)-size])
	if err != nil || num < 1 || num > 9 {
		return TileNull
	}
	return MakeTile(color, num-1)
}
