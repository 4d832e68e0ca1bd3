package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())
	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s%s\n", timestamp, level, entry.Message, formatFields(entry.Data))), nil
	}

	file, line, funcName := entry.Caller.File, entry.Caller.Line, entry.Caller.Function
	fileName := filepath.Base(file)
	funcName = funcName[strings.LastIndex(funcName, ".")+1:]

	// 格式化日志
	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s%s\n", timestamp, level, fileName, line, funcName, entry.Message, formatFields(entry.Data))

	return []byte(logMessage), nil
}

// formatFields 追加 WithFields 带入的字段，按 key 排序
func formatFields(data logrus.Fields) string {
	if len(data) == 0 {
		return ""
	}
	keys := lo.Keys(data)
	slices.Sort(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, data[k])
	}
	return b.String()
}

type logOptions struct {
	maxAge   time.Duration
	rotation time.Duration
}

// LogOption 日志文件轮转选项
type LogOption func(*logOptions)

// WithMaxAge 轮转文件保留时长
func WithMaxAge(d time.Duration) LogOption {
	return func(o *logOptions) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

// WithRotation 轮转周期
func WithRotation(d time.Duration) LogOption {
	return func(o *logOptions) {
		if d > 0 {
			o.rotation = d
		}
	}
}

// Logger 日志写入 dir 下轮转的文件（默认按天轮转、保留 7 天），dir 为空时写 stderr
func Logger(level logrus.Level, dir string, opts ...LogOption) interfaces.Logger {
	options := &logOptions{
		maxAge:   7 * 24 * time.Hour,
		rotation: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(options)
	}

	l := logrus.New()
	if dir == "" {
		l.SetOutput(os.Stderr)
	} else if writer, err := getWriter(dir, options); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

// ParseLevel 解析日志级别，无法识别时返回 info
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}

// logPattern 按天轮转只需日期，更短的周期带上小时和分钟
func logPattern(logPath string, rotation time.Duration) string {
	programName := filepath.Base(os.Args[0])
	layout := "%Y%m%d"
	if rotation < 24*time.Hour {
		layout = "%Y%m%d%H%M"
	}
	return filepath.Join(logPath, programName+"-"+layout+".log")
}

func getWriter(logPath string, options *logOptions) (*SafeRotateLogs, error) {
	logFile := logPattern(logPath, options.rotation)
	// 确保日志目录存在
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", logPath, err)
	}

	// 创建日志轮转写入器
	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(options.maxAge),
		rotatelogs.WithRotationTime(options.rotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
		maxAge:     options.maxAge,
		rotation:   options.rotation,
	}, nil
}

// SafeRotateLogs 是一个包装器，确保文件存在
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

// Write 检查文件是否存在，如果不存在则重新创建
func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	// 获取当前日志文件名
	currentLogFile := s.RotateLogs.CurrentFileName()

	// 检查文件是否存在
	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		// 如果文件不存在，重新创建日志轮转写入器
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(s.maxAge),
			rotatelogs.WithRotationTime(s.rotation),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %w", err)
		}
		s.RotateLogs = writer
	}

	// 写入日志
	return s.RotateLogs.Write(p)
}
