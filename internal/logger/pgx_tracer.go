package logger

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
)

// NewPGXTracer routes pgx query logs to slog. Query arguments are dropped,
// they carry the drafted text.
func NewPGXTracer(logger *slog.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, l tracelog.LogLevel, msg string, data map[string]any) {
			lvl, known := pgxLevel(l)

			if !logger.Enabled(ctx, lvl) {
				return
			}

			attrs := make([]slog.Attr, 0, len(data)+1)
			for k, v := range data {
				switch k {
				case "args":
				case "pid":
				default:
					attrs = append(attrs, slog.Any(k, v))
				}
			}

			sort.Slice(attrs, func(i, j int) bool {
				return attrs[i].Key < attrs[j].Key
			})

			if !known {
				attrs = append(attrs, slog.Any("INVALID_PGX_LOG_LEVEL", l))
			}

			var pcs [1]uintptr
			// skip [runtime.Callers, this function, this function's caller * 3]
			runtime.Callers(5, pcs[:])

			r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
			r.AddAttrs(attrs...)
			_ = logger.Handler().Handle(ctx, r)
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}

func pgxLevel(l tracelog.LogLevel) (slog.Level, bool) {
	switch l {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug, tracelog.LogLevelInfo:
		return slog.LevelDebug, true
	case tracelog.LogLevelWarn:
		return slog.LevelWarn, true
	case tracelog.LogLevelError:
		return slog.LevelError, true
	default:
		return slog.LevelError, false
	}
}
