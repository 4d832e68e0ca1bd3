package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/spf13/viper"
)

// Config 出牌建议服务配置
type Config struct {
	DefaultRule string      `mapstructure:"default_rule"`
	RulesDir    string      `mapstructure:"rules_dir"`
	TopN        int         `mapstructure:"top_n"`
	Parallel    int         `mapstructure:"parallel"`
	Cache       CacheConfig `mapstructure:"cache"`
	Log         LogConfig   `mapstructure:"log"`
}

type LogConfig struct {
	Level    string        `mapstructure:"level"`
	Dir      string        `mapstructure:"dir"` // 为空写 stderr
	MaxAge   time.Duration `mapstructure:"max_age"`
	Rotation time.Duration `mapstructure:"rotation"`
}

type CacheConfig struct {
	MaxCost int64         `mapstructure:"max_cost"` // 缓存条数上限，每条结果 cost 为 1
	TTL     time.Duration `mapstructure:"ttl"`
}

// Default 没有配置文件时使用
func Default() *Config {
	return &Config{
		DefaultRule: mahjong.RuleHubei,
		TopN:        mahjong.DefaultTopN,
		Parallel:    1,
		Cache: CacheConfig{
			MaxCost: 100000,
			TTL:     10 * time.Minute,
		},
		Log: LogConfig{
			Level:    "warn",
			MaxAge:   7 * 24 * time.Hour,
			Rotation: 24 * time.Hour,
		},
	}
}

// Load 读取 yaml 配置，未填写的项取 Default 的值。
// 相对路径的 rules_dir、log.dir 以配置文件所在目录为基准。
func Load(file string) (*Config, error) {
	def := Default()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	v.SetDefault("default_rule", def.DefaultRule)
	v.SetDefault("top_n", def.TopN)
	v.SetDefault("parallel", def.Parallel)
	v.SetDefault("cache.max_cost", def.Cache.MaxCost)
	v.SetDefault("cache.ttl", def.Cache.TTL)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_age", def.Log.MaxAge)
	v.SetDefault("log.rotation", def.Log.Rotation)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", file, err)
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", file, err)
	}
	if conf.RulesDir != "" && !filepath.IsAbs(conf.RulesDir) {
		conf.RulesDir = filepath.Join(filepath.Dir(file), conf.RulesDir)
	}
	if conf.Log.Dir != "" && !filepath.IsAbs(conf.Log.Dir) {
		conf.Log.Dir = filepath.Join(filepath.Dir(file), conf.Log.Dir)
	}
	return conf, nil
}

// Rules 加载 RulesDir 下的规则，并保证 DefaultRule 存在
func (c *Config) Rules() (map[string]*mahjong.Rule, error) {
	rules := map[string]*mahjong.Rule{}
	if c.RulesDir != "" {
		loaded, err := LoadRules(c.RulesDir)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	if _, ok := rules[mahjong.RuleHubei]; !ok {
		rules[mahjong.RuleHubei] = mahjong.HubeiRule()
	}
	if _, ok := rules[c.DefaultRule]; !ok {
		return nil, fmt.Errorf("%w: default rule %q not found", mahjong.ErrInvalidRule, c.DefaultRule)
	}
	return rules, nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
