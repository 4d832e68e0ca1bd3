package mahjong

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorDot                         // 筒
	ColorBamboo                      // 条
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SEQ_BEGIN_BY_COLOR = [ColorEnd]int{0, 9, 18, 27, 31}

const (
	TileKindCount = 34 // 牌种数
	SuitKindCount = 27 // 数牌牌种数
	HandTileCount = 14 // 分析时的手牌张数
	MaxGroupCount = 4  // 面子上限
)

const (
	ShantenWin  = -1 // 已胡
	ShantenTing = 0  // 听牌
	ShantenMax  = 8  // 向听上限
)

const (
	ScoreDeclare       = 20000 // 杠牌建议固定排在最前
	ScoreWin           = 9999
	ScoreShantenWeight = 1000
	ScoreShantenBase   = 10
	DefaultTopN        = 5
)
