package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kevin-chtw/tw_advisor/config"
	"github.com/kevin-chtw/tw_advisor/service"
	"github.com/kevin-chtw/tw_advisor/utils"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type options struct {
	configFile string
	rulesDir   string
	rule       string
	laizi      string
	parallel   int
	top        int
	json       bool
	logLevel   string
	logDir     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "mjadvisor [hand]",
		Short: "mjadvisor 湖北麻将出牌建议",
		Long: `mjadvisor 根据 14 张手牌给出出牌建议。
手牌支持紧凑写法 "123m456p789s55s77z"（z 为东南西北白发中）
或中文名称 "1万,2万,3万,中"。`,
		Example: `  mjadvisor 111m234m567p111s33m
  mjadvisor --laizi 6p 123456789m55s79s6p
  mjadvisor --config etc/advisor.yaml --rule hubei_free --json 1223456789m555p7z`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, strings.Join(args, ""))
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "advisor config file (yaml)")
	flags.StringVar(&opts.rulesDir, "rules", "", "rules directory, overrides rules_dir in config")
	flags.StringVar(&opts.rule, "rule", "", "rule name, default rule of config when empty")
	flags.StringVar(&opts.laizi, "laizi", "", "laizi tile, e.g. 6p or 6筒")
	flags.IntVar(&opts.parallel, "parallel", 0, "evaluate discards concurrently")
	flags.IntVar(&opts.top, "top", 0, "number of suggestions")
	flags.BoolVar(&opts.json, "json", false, "print json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides log.level in config")
	flags.StringVar(&opts.logDir, "log-dir", "", "log directory, overrides log.dir in config")
	return cmd
}

func loadConfig(opts *options) (*config.Config, error) {
	conf := config.Default()
	if opts.configFile != "" {
		var err error
		if conf, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}
	if opts.rulesDir != "" {
		conf.RulesDir = opts.rulesDir
	}
	if opts.parallel > 0 {
		conf.Parallel = opts.parallel
	}
	if opts.top > 0 {
		conf.TopN = opts.top
	}
	if opts.logLevel != "" {
		conf.Log.Level = opts.logLevel
	}
	if opts.logDir != "" {
		conf.Log.Dir = opts.logDir
	}
	return conf, nil
}

func run(cmd *cobra.Command, opts *options, hand string) error {
	conf, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.SetLogger(utils.Logger(utils.ParseLevel(conf.Log.Level), conf.Log.Dir,
		utils.WithMaxAge(conf.Log.MaxAge),
		utils.WithRotation(conf.Log.Rotation),
	))

	advisor, err := service.NewAdvisor(conf, nil)
	if err != nil {
		return err
	}
	ack, err := advisor.Analyze(context.Background(), &service.AnalyzeReq{
		Hand:  hand,
		Laizi: opts.laizi,
		Rule:  opts.rule,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ack)
	}
	printAck(out, ack)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
