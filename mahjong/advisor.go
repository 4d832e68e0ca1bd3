package mahjong

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Analysis 一次分析的完整结果
type Analysis struct {
	Shanten     int          // 当前 14 张的向听数
	Declared    bool         // 是否持有必杠牌
	Suggestions []Suggestion // 按分数从高到低，最多 topN 条
}

// Advisor 出牌建议器，本身无状态，可并发使用
type Advisor struct {
	rule     *Rule
	topN     int
	parallel int
}

type AdvisorOption func(*Advisor)

// WithTopN 返回的建议条数
func WithTopN(n int) AdvisorOption {
	return func(a *Advisor) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithParallel 按出牌候选并发计算，n <= 1 时顺序计算
func WithParallel(n int) AdvisorOption {
	return func(a *Advisor) {
		a.parallel = n
	}
}

func NewAdvisor(rule *Rule, opts ...AdvisorOption) *Advisor {
	a := &Advisor{
		rule: rule,
		topN: DefaultTopN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Advisor) Rule() *Rule {
	return a.rule
}

// ValidateHand 分析前置条件：恰好 14 张有效牌，癞子为空或有效牌
func ValidateHand(hand []Tile, laizi Tile) error {
	if len(hand) != HandTileCount {
		return fmt.Errorf("%w: got %d", ErrHandSize, len(hand))
	}
	for i, t := range hand {
		if !t.IsValid() {
			return fmt.Errorf("%w: tile #%d (%d)", ErrInvalidTile, i, t)
		}
	}
	if laizi != TileNull && !laizi.IsValid() {
		return fmt.Errorf("%w: laizi (%d)", ErrInvalidTile, laizi)
	}
	return nil
}

// Analyze 返回排序后的出牌建议
func (a *Advisor) Analyze(hand []Tile, laizi Tile) ([]Suggestion, error) {
	res, err := a.Evaluate(hand, laizi)
	if err != nil {
		return nil, err
	}
	return res.Suggestions, nil
}

func (a *Advisor) Evaluate(hand []Tile, laizi Tile) (*Analysis, error) {
	if err := ValidateHand(hand, laizi); err != nil {
		return nil, err
	}
	counts, laiziCount, declared := countTiles(hand, laizi, a.rule)
	res := &Analysis{Declared: declared}

	var suggestions []Suggestion
	if declared {
		suggestions = append(suggestions, newDeclareSuggestion(a.rule.MustDeclare))
	}

	res.Shanten = CalcShanten(counts, laiziCount, a.rule)
	logger.Log.Debugf("analyze rule=%s laizi=%s declared=%t shanten=%d", a.rule.Name, laizi, declared, res.Shanten)
	if res.Shanten <= ShantenWin {
		res.Suggestions = append(suggestions, newWinSuggestion())
		return res, nil
	}

	discards, err := a.evalDiscards(counts, laiziCount, laizi, res.Shanten)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, discards...)
	slices.SortStableFunc(suggestions, func(x, y Suggestion) int {
		return cmp.Compare(y.Score, x.Score)
	})
	if len(suggestions) > a.topN {
		suggestions = suggestions[:a.topN]
	}
	res.Suggestions = suggestions
	return res, nil
}

// discardCandidates 手里有的每种牌（按下标升序），必杠牌除外
func (a *Advisor) discardCandidates(counts TileCounts, laiziCount int, laizi Tile) []Tile {
	var res []Tile
	for i, n := range counts {
		t := TileAt(i)
		if n > 0 || (laiziCount > 0 && t == laizi) {
			res = append(res, t)
		}
	}
	return res
}

func (a *Advisor) evalDiscards(counts TileCounts, laiziCount int, laizi Tile, initial int) ([]Suggestion, error) {
	candidates := a.discardCandidates(counts, laiziCount, laizi)
	res := make([]Suggestion, len(candidates))
	if a.parallel <= 1 {
		for i, discard := range candidates {
			res[i] = a.evalDiscard(counts, laiziCount, laizi, discard, initial)
		}
		return res, nil
	}

	var g errgroup.Group
	g.SetLimit(a.parallel)
	for i, discard := range candidates {
		g.Go(func() error {
			res[i] = a.evalDiscard(counts, laiziCount, laizi, discard, initial)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// evalDiscard 打出 discard 后枚举 34 种摸牌，只保留能降低向听的进张
func (a *Advisor) evalDiscard(counts TileCounts, laiziCount int, laizi, discard Tile, initial int) Suggestion {
	rest, restLaizi := counts, laiziCount
	if discard == laizi {
		restLaizi--
	} else {
		rest[discard.Index()]--
	}

	best := ShantenMax
	var waits []Tile
	for _, draw := range AllTiles() {
		if a.rule.HasMustDeclare() && draw == a.rule.MustDeclare {
			continue
		}
		next, nextLaizi := rest, restLaizi
		if draw == laizi {
			nextLaizi++
		} else {
			next[draw.Index()]++
		}
		s := CalcShanten(next, nextLaizi, a.rule)
		if s >= initial {
			continue
		}
		if s < best {
			best = s
			waits = waits[:0]
		}
		if s == best {
			waits = append(waits, draw)
		}
	}
	return newDiscardSuggestion(discard, best, waits)
}
