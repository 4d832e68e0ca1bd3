package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kevin-chtw/tw_advisor/config"
	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/kevin-chtw/tw_advisor/storage"
	"github.com/samber/lo"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var ErrUnknownRule = errors.New("unknown rule")

// AnalyzeReq 分析请求，hand/laizi 支持紧凑写法和中文名称
type AnalyzeReq struct {
	Hand  string `json:"hand"`
	Laizi string `json:"laizi,omitempty"`
	Rule  string `json:"rule,omitempty"` // 为空用默认规则
}

type AnalyzeAck struct {
	Rule        string               `json:"rule"`
	Hand        string               `json:"hand"`
	Laizi       string               `json:"laizi,omitempty"`
	Shanten     int                  `json:"shanten"`
	Declared    bool                 `json:"declared"`
	Suggestions []mahjong.Suggestion `json:"suggestions"`
}

type RulesReq struct{}

type RuleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Eyes        []string `json:"eyes"`
	MustDeclare string   `json:"must_declare,omitempty"`
}

type RulesAck struct {
	Default string     `json:"default"`
	Rules   []RuleInfo `json:"rules"`
}

// Advisor 按规则分派到对应的 mahjong.Advisor，结果经缓存复用
type Advisor struct {
	defaultRule string
	advisors    map[string]*mahjong.Advisor
	cache       *storage.AnalysisCache
}

// NewAdvisor cache 可以为 nil
func NewAdvisor(conf *config.Config, cache *storage.AnalysisCache) (*Advisor, error) {
	rules, err := conf.Rules()
	if err != nil {
		return nil, err
	}
	a := &Advisor{
		defaultRule: conf.DefaultRule,
		advisors:    make(map[string]*mahjong.Advisor, len(rules)),
		cache:       cache,
	}
	for name, rule := range rules {
		a.advisors[name] = mahjong.NewAdvisor(rule, mahjong.WithTopN(conf.TopN), mahjong.WithParallel(conf.Parallel))
	}
	logger.Log.Infof("advisor rules %v, default %s", lo.Keys(a.advisors), a.defaultRule)
	return a, nil
}

func (a *Advisor) advisor(name string) (*mahjong.Advisor, error) {
	if name == "" {
		name = a.defaultRule
	}
	adv, ok := a.advisors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return adv, nil
}

func (a *Advisor) Analyze(ctx context.Context, req *AnalyzeReq) (*AnalyzeAck, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	adv, err := a.advisor(req.Rule)
	if err != nil {
		return nil, err
	}
	hand, err := mahjong.ParseTiles(req.Hand)
	if err != nil {
		return nil, err
	}
	laizi := mahjong.TileNull
	if req.Laizi != "" {
		if laizi, err = mahjong.ParseTile(req.Laizi); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rule := adv.Rule().Name
	res, ok := a.cache.Get(rule, hand, laizi)
	if !ok {
		if res, err = adv.Evaluate(hand, laizi); err != nil {
			return nil, err
		}
		a.cache.Set(rule, hand, laizi, res)
	} else {
		logger.Log.Debugf("analysis cache hit, rule %s", rule)
	}

	ack := &AnalyzeAck{
		Rule:        rule,
		Hand:        mahjong.TilesName(hand),
		Shanten:     res.Shanten,
		Declared:    res.Declared,
		Suggestions: slices.Clone(res.Suggestions),
	}
	if laizi != mahjong.TileNull {
		ack.Laizi = laizi.Name()
	}
	return ack, nil
}

// Rules 列出所有规则，按名称排序
func (a *Advisor) Rules() *RulesAck {
	names := lo.Keys(a.advisors)
	slices.Sort(names)
	return &RulesAck{
		Default: a.defaultRule,
		Rules: lo.Map(names, func(name string, _ int) RuleInfo {
			rule := a.advisors[name].Rule()
			info := RuleInfo{
				Name:        rule.Name,
				Description: rule.Description,
				Eyes:        lo.Map(rule.EyeTiles(), func(t mahjong.Tile, _ int) string { return t.Name() }),
			}
			if rule.HasMustDeclare() {
				info.MustDeclare = rule.MustDeclare.Name()
			}
			return info
		}),
	}
}
