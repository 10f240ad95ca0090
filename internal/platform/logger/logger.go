package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "info"
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Logger es la interfaz que reciben servicios y middlewares.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	// Out por defecto es stdout.
	Out io.Writer
}

type stdLogger struct {
	mu     *sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	base   map[string]any
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		mu:     &sync.Mutex{},
		std:    log.New(out, "", 0),
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// NewFromEnv lee LOG_LEVEL, LOG_FORMAT y APP_NAME.
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *stdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := make(map[string]any, len(l.base)+len(fields))
	copyFields(merged, l.base)
	copyFields(merged, fields)

	return &stdLogger{
		mu:     l.mu,
		std:    l.std,
		level:  l.level,
		format: l.format,
		base:   merged,
	}
}

func (l *stdLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *stdLogger) write(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := make(map[string]any, len(l.base)+len(fields)+3)
	copyFields(entry, l.base)
	copyFields(entry, fields)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"level": "error", "msg": "log marshal failed", "err": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(entry)
	}

	l.mu.Lock()
	l.std.Println(line)
	l.mu.Unlock()
}

func copyFields(dst, src map[string]any) {
	for k, v := range src {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		dst[k] = v
	}
}

// formatText ordena las keys: ts, level y msg primero, el resto alfabético.
func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "ts" || k == "level" || k == "msg" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{
		fmt.Sprintf("ts=%v", m["ts"]),
		fmt.Sprintf("level=%v", m["level"]),
		fmt.Sprintf("msg=%q", m["msg"]),
	}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}

type nop struct{}

// Nop descarta todo. Útil en tests y como default cuando no se inyecta logger.
func Nop() Logger { return nop{} }

func (n nop) With(map[string]any) Logger   { return n }
func (nop) Debug(string, map[string]any) {}
func (nop) Info(string, map[string]any)  {}
func (nop) Warn(string, map[string]any)  {}
func (nop) Error(string, map[string]any) {}
