package mahjong

// TileCounts 34 种牌各自的张数，不含癞子与必杠牌
type TileCounts [TileKindCount]int

// countTiles 拆出普通牌计数、癞子数，以及是否持有必杠牌。
// 必杠牌优先于癞子判断，即使被指定为癞子也不参与计算。
func countTiles(tiles []Tile, laizi Tile, rule *Rule) (TileCounts, int, bool) {
	var counts TileCounts
	laiziCount := 0
	declared := false
	for _, t := range tiles {
		switch {
		case rule.HasMustDeclare() && t == rule.MustDeclare:
			declared = true
		case laizi != TileNull && t == laizi:
			laiziCount++
		default:
			counts[t.Index()]++
		}
	}
	return counts, laiziCount, declared
}

// CalcShanten 在规则限定的将牌下求最小向听数，结果在 [-1, 8]
func CalcShanten(counts TileCounts, laizi int, rule *Rule) int {
	minShanten := ShantenMax
	for _, eye := range rule.Eyes {
		rest := counts
		switch n := counts[eye]; {
		case n >= 2:
			rest[eye] -= 2
			minShanten = min(minShanten, searchMelds(rest, laizi, true))
		case n == 1 && laizi >= 1:
			rest[eye]--
			minShanten = min(minShanten, searchMelds(rest, laizi-1, true))
		case n == 1:
			// 单吊将：只差一张成将，最好也只是听牌
			rest[eye]--
			minShanten = min(minShanten, max(ShantenTing, searchMelds(rest, laizi, false)-1))
		case laizi >= 2:
			minShanten = min(minShanten, searchMelds(rest, laizi-2, true))
		}
	}

	// 不定将：听牌与胡牌都已由上面的定将分支覆盖，这里至少一向听
	noEye := max(ShantenTing+1, searchMelds(counts, laizi, false))
	return min(minShanten, noEye)
}

// HandShanten 直接对手牌求向听数
func HandShanten(tiles []Tile, laizi Tile, rule *Rule) int {
	counts, laiziCount, _ := countTiles(tiles, laizi, rule)
	return CalcShanten(counts, laiziCount, rule)
}
