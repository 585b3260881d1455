package postgresdb

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// https://github.com/jackc/pgx/discussions/1677#discussioncomment-8815982
type MultiQueryTracer struct {
	Tracers []pgx.QueryTracer
}

func NewMultiQueryTracer(tracers ...pgx.QueryTracer) *MultiQueryTracer {
	return &MultiQueryTracer{Tracers: tracers}
}

func (m *MultiQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, t := range m.Tracers {
		ctx = t.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (m *MultiQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, t := range m.Tracers {
		t.TraceQueryEnd(ctx, conn, data)
	}
}

// https://github.com/jackc/pgx/issues/1061#issuecomment-1186250809
type LoggingQueryTracer struct {
	logger *slog.Logger
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger}
}

var (
	replaceTabs   = regexp.MustCompile(`\t+`)
	replaceSpaces = regexp.MustCompile(`\s+`)
)

// prettyPrintSQL collapses a multi-line query into one line for logging.
func prettyPrintSQL(sql string) string {
	pretty := strings.Join(strings.Split(sql, "\n"), " ")
	pretty = replaceTabs.ReplaceAllString(pretty, "")
	pretty = replaceSpaces.ReplaceAllString(pretty, " ")
	return strings.TrimSpace(pretty)
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	l.logger.DebugContext(ctx, "query start", "sql", prettyPrintSQL(data.SQL), "args", data.Args)
	return ctx
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		l.logger.ErrorContext(ctx, "query failed", "err", data.Err)
		return
	}
	l.logger.DebugContext(ctx, "query end", "command", data.CommandTag.String())
}
