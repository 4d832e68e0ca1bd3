package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/spf13/viper"
)

// RuleConfig 单个规则文件的内容
type RuleConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Eyes        string `mapstructure:"eyes"`         // 可作将的牌，如 "258m258p258s"
	MustDeclare string `mapstructure:"must_declare"` // 必杠牌，留空表示无
}

// Build 转换成规则，名称为空时用 fallback
func (rc *RuleConfig) Build(fallback string) (*mahjong.Rule, error) {
	name := rc.Name
	if name == "" {
		name = fallback
	}
	opts := []mahjong.RuleOption{mahjong.WithDescription(rc.Description)}
	if rc.Eyes != "" {
		eyes, err := mahjong.ParseTiles(rc.Eyes)
		if err != nil {
			return nil, fmt.Errorf("rule %s eyes: %w", name, err)
		}
		opts = append(opts, mahjong.WithEyes(eyes...))
	}
	declare := mahjong.TileNull
	if s := strings.TrimSpace(rc.MustDeclare); s != "" {
		t, err := mahjong.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("rule %s must_declare: %w", name, err)
		}
		declare = t
	}
	opts = append(opts, mahjong.WithMustDeclare(declare))
	return mahjong.NewRule(name, opts...)
}

// LoadRule 每个规则文件一个 viper 实例
func LoadRule(file string) (*mahjong.Rule, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	v.SetDefault("eyes", "258m258p258s")
	v.SetDefault("must_declare", mahjong.TileZhong.Name())
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule %s: %w", file, err)
	}
	rc := &RuleConfig{}
	if err := v.Unmarshal(rc); err != nil {
		return nil, fmt.Errorf("decode rule %s: %w", file, err)
	}
	return rc.Build(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
}

// LoadRules 加载目录下所有 yaml 规则，规则名重复视为错误
func LoadRules(dir string) (map[string]*mahjong.Rule, error) {
	if !dirExists(dir) {
		return nil, fmt.Errorf("rules dir %s not found", dir)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	rules := make(map[string]*mahjong.Rule, len(files))
	for _, file := range files {
		rule, err := LoadRule(file)
		if err != nil {
			return nil, err
		}
		if _, ok := rules[rule.Name]; ok {
			return nil, fmt.Errorf("%w: duplicated rule %s in %s", mahjong.ErrInvalidRule, rule.Name, file)
		}
		rules[rule.Name] = rule
	}
	return rules, nil
}
