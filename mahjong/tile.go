package mahjong

import (
	"strconv"
	"strings"
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
	TileBai   Tile = MakeTile(ColorDragon, 0) // 白
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileZhong Tile = MakeTile(ColorDragon, 2) // 中
)

var windNames = []string{"东", "南", "西", "北"}
var dragonNames = []string{"白", "发", "中"}

// 下标 -> 牌
var tilesByIndex = func() [TileKindCount]Tile {
	var res [TileKindCount]Tile
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			res[SEQ_BEGIN_BY_COLOR[c]+p] = MakeTile(c, p)
		}
	}
	return res
}()

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | 1))
}

// HonorTile 字牌按 1-7 编号：东南西北白发中
func HonorTile(value int) Tile {
	if value <= len(windNames) {
		return MakeTile(ColorWind, value-1)
	}
	return MakeTile(ColorDragon, value-len(windNames)-1)
}

// TileAt 是 Index 的逆映射，index 必须在 [0, TileKindCount)
func TileAt(index int) Tile {
	return tilesByIndex[index]
}

func AllTiles() []Tile {
	return tilesByIndex[:]
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf || t.Flag() != 1 {
		return false
	}
	c, p := t.Info()
	return c >= ColorBegin && c < ColorEnd && p < PointCountByColor[c]
}

// Index 牌在 34 种牌中的下标：万 0-8，筒 9-17，条 18-26，字 27-33
func (t Tile) Index() int {
	c, p := t.Info()
	return SEQ_BEGIN_BY_COLOR[c] + p
}

// Value 牌面数值：数牌 1-9，字牌 1-7
func (t Tile) Value() int {
	c, p := t.Info()
	if c == ColorDragon {
		return len(windNames) + p + 1
	}
	return p + 1
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) Is258() bool { // 258牌
	return t.IsSuit() && (t.Point()%3 == 1)
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorWind:
		return windNames[p]
	case ColorDragon:
		return dragonNames[p]
	default:
		return ""
	}
}

func (t Tile) String() string {
	if !t.IsValid() {
		return "?"
	}
	return t.Name()
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}
