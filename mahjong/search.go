package mahjong

// meldSearch 回溯枚举面子/搭子拆分，记录 2*面子+搭子 的最大值
type meldSearch struct {
	best int
}

// searchMelds 返回 8 - 2*G - P - (hasEye ? 1 : 0)，G/P 取所有拆分中的最优
func searchMelds(counts TileCounts, laizi int, hasEye bool) int {
	s := &meldSearch{}
	s.search(counts, 0, laizi, 0, 0)
	shanten := ShantenMax - s.best
	if hasEye {
		shanten--
	}
	return shanten
}

// 每个分支拿到的是计数数组的副本，回溯时无需恢复
func (s *meldSearch) search(c TileCounts, index, w, g, p int) {
	if g > MaxGroupCount {
		return
	}
	for index < TileKindCount && c[index] == 0 {
		index++
	}
	if index == TileKindCount {
		s.settle(w, g, p)
		return
	}

	n := c[index]

	// 刻子，只取第一种可行的凑法
	switch {
	case n >= 3:
		next := c
		next[index] -= 3
		s.search(next, index, w, g+1, p)
	case n >= 2 && w >= 1:
		next := c
		next[index] -= 2
		s.search(next, index, w-1, g+1, p)
	case n >= 1 && w >= 2:
		next := c
		next[index]--
		s.search(next, index, w-2, g+1, p)
	}

	// 顺子，当前牌作为顺子的第一张
	if canStartRun(index) {
		c1, c2 := c[index+1], c[index+2]
		if c1 > 0 && c2 > 0 {
			next := c
			next[index]--
			next[index+1]--
			next[index+2]--
			s.search(next, index, w, g+1, p)
		}
		if w >= 1 {
			if c1 == 0 && c2 > 0 { // 癞子补中张
				next := c
				next[index]--
				next[index+2]--
				s.search(next, index, w-1, g+1, p)
			}
			if c1 > 0 && c2 == 0 { // 癞子补边张
				next := c
				next[index]--
				next[index+1]--
				s.search(next, index, w-1, g+1, p)
			}
		}
		if w >= 2 && c1 == 0 && c2 == 0 {
			next := c
			next[index]--
			s.search(next, index, w-2, g+1, p)
		}
	}
	// 八九缺七，癞子补在前面
	if w >= 1 && index < SuitKindCount && index%9 == 7 && c[index+1] > 0 {
		next := c
		next[index]--
		next[index+1]--
		s.search(next, index, w-1, g+1, p)
	}

	// 对子搭子
	switch {
	case n >= 2:
		next := c
		next[index] -= 2
		s.search(next, index, w, g, p+1)
	case n == 1 && w >= 1:
		next := c
		next[index]--
		s.search(next, index, w-1, g, p+1)
	}

	// 两面/边张搭子
	if index < SuitKindCount && index%9 < 8 && c[index+1] > 0 {
		next := c
		next[index]--
		next[index+1]--
		s.search(next, index, w, g, p+1)
	}
	// 嵌张搭子
	if canStartRun(index) && c[index+2] > 0 {
		next := c
		next[index]--
		next[index+2]--
		s.search(next, index, w, g, p+1)
	}

	// 孤张
	s.search(c, index+1, w, g, p)
}

// settle 扫描结束：剩余癞子三张成面子，两张成搭子
func (s *meldSearch) settle(w, g, p int) {
	if w >= 3 {
		g += w / 3
		w %= 3
	}
	if w >= 2 {
		p++
	}
	if g > MaxGroupCount {
		g = MaxGroupCount
	}
	if g+p > MaxGroupCount {
		p = MaxGroupCount - g
	}
	if score := 2*g + p; score > s.best {
		s.best = score
	}
}

// canStartRun 同一花色内 index, index+1, index+2 都存在
func canStartRun(index int) bool {
	return index < SuitKindCount && index%9 < 7
}
