package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the seqdiff logger: prefixed with the app name,
// timestamped to the hundredth of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer measures one step of a comparison and reports it at debug level.
type timer struct {
	logger *log.Logger
	step   string
	start  time.Time
}

func startTimer(l *log.Logger, step string) timer {
	return timer{logger: l, step: step, start: time.Now()}
}

// stop logs the step with its elapsed time and any extra key/value pairs.
func (t timer) stop(keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(t.start).Round(time.Microsecond))
	t.logger.Debug(t.step, keyvals...)
}

type loggerKey struct{}

// withLogger attaches l to ctx for the commands below the root.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the attached logger, falling back to log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
