package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Handler formats logs as "YYYY/MM/DD HH:MM:SS LEVEL Message key=value ...".
// The hosting platform captures a component's stdout/stderr verbatim, so the
// output stays plain text rather than JSON.
type Handler struct {
	out   io.Writer
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &Handler{out: out, opts: opts}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.opts != nil && h.opts.Level != nil {
		return level >= h.opts.Level.Level()
	}

	return true
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var line strings.Builder

	line.WriteString(r.Time.Format("2006/01/02 15:04:05"))
	line.WriteString(" ")
	line.WriteString(strings.ToUpper(r.Level.String()))
	line.WriteString(" ")
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&line, attr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, attr)

		return true
	})

	if _, err := fmt.Fprintln(h.out, line.String()); err != nil {
		return fmt.Errorf("unable to write log record: %w", err)
	}

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	copyHandler := *h
	copyHandler.attrs = append(copyHandler.attrs[:len(copyHandler.attrs):len(copyHandler.attrs)], attrs...)

	return &copyHandler
}

func (h *Handler) WithGroup(name string) slog.Handler { return h }

func writeAttr(line *strings.Builder, attr slog.Attr) {
	line.WriteString(" ")
	line.WriteString(attr.Key)
	line.WriteString("=")
	line.WriteString(attr.Value.String())
}
