package mahjong

import (
	"fmt"

	"github.com/samber/lo"
)

type SuggestionKind int

const (
	SuggestionDiscard SuggestionKind = iota // 出牌
	SuggestionDeclare                       // 杠必杠牌
	SuggestionWin                           // 已胡
)

var suggestionKindNames = map[SuggestionKind]string{
	SuggestionDiscard: "discard",
	SuggestionDeclare: "declare",
	SuggestionWin:     "win",
}

func (k SuggestionKind) String() string {
	return suggestionKindNames[k]
}

// 必杠牌的展示名
var declareNames = map[Tile]string{
	TileZhong: "红中",
	TileFa:    "发财",
	TileBai:   "白板",
}

// Suggestion 一条出牌建议
type Suggestion struct {
	Discard      string   `json:"discard"`
	Score        int      `json:"score"`
	WaitingTiles []string `json:"waiting_tiles"`
	Comment      string   `json:"comment"`

	Kind    SuggestionKind `json:"kind"`
	Tile    Tile           `json:"tile"`    // 打出的牌，非出牌建议为 TileNull
	Shanten int            `json:"shanten"` // 打出后摸到有效牌能达到的最小向听
	Waits   []Tile         `json:"-"`
}

func newDeclareSuggestion(t Tile) Suggestion {
	name, ok := declareNames[t]
	if !ok {
		name = t.Name()
	}
	return Suggestion{
		Discard:      "杠" + name,
		Score:        ScoreDeclare,
		WaitingTiles: []string{"杠上开花"},
		Comment:      fmt.Sprintf("建议杠%s (翻倍收益)", name),
		Kind:         SuggestionDeclare,
		Tile:         TileNull,
		Shanten:      ShantenMax,
	}
}

func newWinSuggestion() Suggestion {
	return Suggestion{
		Discard:      "已胡牌",
		Score:        ScoreWin,
		WaitingTiles: []string{"自摸"},
		Comment:      "当前手牌已满足胡牌条件！",
		Kind:         SuggestionWin,
		Tile:         TileNull,
		Shanten:      ShantenWin,
	}
}

func newDiscardSuggestion(discard Tile, shanten int, waits []Tile) Suggestion {
	return Suggestion{
		Discard:      discard.Name(),
		Score:        discardScore(shanten, len(waits)),
		WaitingTiles: lo.Map(waits, func(t Tile, _ int) string { return t.Name() }),
		Comment:      shantenComment(shanten, len(waits)),
		Kind:         SuggestionDiscard,
		Tile:         discard,
		Shanten:      shanten,
		Waits:        waits,
	}
}

// discardScore 向听数优先，进张种类数其次
func discardScore(shanten, waits int) int {
	return (ScoreShantenBase-shanten)*ScoreShantenWeight + waits
}

func shantenComment(shanten, waits int) string {
	switch shanten {
	case ShantenWin:
		return fmt.Sprintf("听牌：进 %d 门", waits)
	case ShantenTing:
		return fmt.Sprintf("一向听：进 %d 门", waits)
	default:
		return fmt.Sprintf("%d向听：进 %d 门", shanten, waits)
	}
}
