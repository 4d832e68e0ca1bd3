package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_advisor/config"
	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestLoad(t *testing.T) {
	conf, err := config.Load("../etc/advisor.yaml")
	require.NoError(t, err)
	assert.Equal(t, mahjong.RuleHubei, conf.DefaultRule)
	assert.Equal(t, 5, conf.TopN)
	assert.Equal(t, 4, conf.Parallel)
	assert.Equal(t, int64(100000), conf.Cache.MaxCost)
	assert.Equal(t, 10*time.Minute, conf.Cache.TTL)
	assert.Equal(t, filepath.Join("..", "etc", "rules"), conf.RulesDir)
	assert.Equal(t, config.LogConfig{Level: "warn", MaxAge: 7 * 24 * time.Hour, Rotation: 24 * time.Hour}, conf.Log)

	rules, err := conf.Rules()
	require.NoError(t, err)
	assert.Contains(t, rules, "hubei")
	assert.Contains(t, rules, "hubei_free")
	assert.False(t, rules["hubei_free"].HasMustDeclare())
	assert.Equal(t, mahjong.HubeiRule().Eyes, rules["hubei"].Eyes)
	assert.Equal(t, mahjong.TileZhong, rules["hubei"].MustDeclare)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "advisor.yaml", "parallel: 2\nlog:\n  dir: logs\n  rotation: 1h\n")

	conf, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Parallel)
	assert.Equal(t, config.Default().TopN, conf.TopN)
	assert.Equal(t, config.Default().Cache, conf.Cache)
	assert.Equal(t, config.LogConfig{
		Level:    "warn",
		Dir:      filepath.Join(dir, "logs"),
		MaxAge:   7 * 24 * time.Hour,
		Rotation: time.Hour,
	}, conf.Log)
	assert.Empty(t, conf.RulesDir)

	rules, err := conf.Rules()
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	conf.DefaultRule = "missing"
	_, err = conf.Rules()
	assert.ErrorIs(t, err, mahjong.ErrInvalidRule)
}

func TestLoadRule(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		eyes    string
		declare mahjong.Tile
	}{
		{"defaults", "description: 默认\n", "2万, 5万, 8万, 2筒, 5筒, 8筒, 2条, 5条, 8条", mahjong.TileZhong},
		{"yaoji", "name: yaoji\neyes: 1万,9万,1筒,9筒\nmust_declare: 6z\n", "1万, 9万, 1筒, 9筒", mahjong.TileFa},
		{"free", "eyes: 5s\nmust_declare: \"\"\n", "5条", mahjong.TileNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := config.LoadRule(writeFile(t, dir, tt.name+".yaml", tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.name, rule.Name)
			assert.Equal(t, tt.eyes, mahjong.TilesName(rule.EyeTiles()))
			assert.Equal(t, tt.declare, rule.MustDeclare)
		})
	}
}

func TestLoadRuleInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadRule(writeFile(t, dir, "honor.yaml", "eyes: 11z\n"))
	assert.ErrorIs(t, err, mahjong.ErrInvalidRule)

	_, err = config.LoadRule(writeFile(t, dir, "typo.yaml", "eyes: 2x\n"))
	assert.ErrorIs(t, err, mahjong.ErrParse)

	_, err = config.LoadRule(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRulesDuplicated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "name: same\n")
	writeFile(t, dir, "b.yaml", "name: same\n")

	_, err := config.LoadRules(dir)
	assert.ErrorIs(t, err, mahjong.ErrInvalidRule)

	_, err = config.LoadRules(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
