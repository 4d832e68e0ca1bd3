package storage

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
)

// AnalysisCache 缓存分析结果，同一手牌（不论顺序）+ 癞子 + 规则只算一次。
// nil 或未 Init 时所有读写直接穿透。
type AnalysisCache struct {
	modules.Base
	cache   *ristretto.Cache
	maxCost int64
	ttl     time.Duration
}

// NewAnalysisCache maxCost 为最多缓存的结果条数
func NewAnalysisCache(maxCost int64, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		maxCost: maxCost,
		ttl:     ttl,
	}
}

// Init 模块初始化
func (c *AnalysisCache) Init() error {
	if c == nil || c.cache != nil {
		return nil
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: max(c.maxCost*10, 1000),
		MaxCost:     c.maxCost,
		BufferItems: 64,
		// cost 按条数计，不叠加 ristretto 内部的条目开销
		IgnoreInternalCost: true,
	})
	if err != nil {
		return fmt.Errorf("create analysis cache: %w", err)
	}
	c.cache = cache
	logger.Log.Infof("analysis cache ready, max cost %d, ttl %s", c.maxCost, c.ttl)
	return nil
}

// Shutdown 释放缓存
func (c *AnalysisCache) Shutdown() error {
	if c != nil && c.cache != nil {
		c.cache.Close()
		c.cache = nil
	}
	return nil
}

func (c *AnalysisCache) Get(rule string, hand []mahjong.Tile, laizi mahjong.Tile) (*mahjong.Analysis, bool) {
	if c == nil || c.cache == nil {
		return nil, false
	}
	v, ok := c.cache.Get(AnalysisKey(rule, hand, laizi))
	if !ok {
		return nil, false
	}
	res, ok := v.(*mahjong.Analysis)
	return res, ok
}

// Set 写入是异步的，返回 false 表示被准入策略丢弃
func (c *AnalysisCache) Set(rule string, hand []mahjong.Tile, laizi mahjong.Tile, res *mahjong.Analysis) bool {
	if c == nil || c.cache == nil {
		return false
	}
	return c.cache.SetWithTTL(AnalysisKey(rule, hand, laizi), res, 1, c.ttl)
}

// Wait 等待缓冲中的写入生效
func (c *AnalysisCache) Wait() {
	if c != nil && c.cache != nil {
		c.cache.Wait()
	}
}

func (c *AnalysisCache) Delete(rule string, hand []mahjong.Tile, laizi mahjong.Tile) {
	if c != nil && c.cache != nil {
		c.cache.Del(AnalysisKey(rule, hand, laizi))
	}
}

// AnalysisKey 形如 "hubei|中|1万,1万,2万,..."，手牌按下标排序
func AnalysisKey(rule string, hand []mahjong.Tile, laizi mahjong.Tile) string {
	sorted := slices.Clone(hand)
	slices.SortFunc(sorted, func(a, b mahjong.Tile) int { return a.Index() - b.Index() })
	names := make([]string, len(sorted))
	for i, t := range sorted {
		names[i] = t.Name()
	}
	return rule + "|" + laizi.String() + "|" + strings.Join(names, ",")
}
