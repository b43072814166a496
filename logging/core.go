package logging

import (
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceContextKey = "serviceContext"

// ServiceContext Error Reportingでサービスを識別するserviceContextフィールド
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("service", name)
		enc.AddString("version", version)
		return nil
	}))
}

// core serviceContext, sourceLocation, エラー時のcontextを付与するzapcore.Core
type core struct {
	zapcore.Core
	service zap.Field
}

func wrapCore(c zapcore.Core, serviceName, serviceVersion string) zapcore.Core {
	return &core{
		Core:    c,
		service: ServiceContext(serviceName, serviceVersion),
	}
}

// With adds structured context to the Core.
func (c *core) With(fields []zap.Field) zapcore.Core {
	return &core{
		Core:    c.Core.With(fields),
		service: c.service,
	}
}

// Check determines whether the supplied Entry should be logged.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write serializes the Entry and any Fields supplied at the log site and
// writes them to their destination.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if !hasField(fields, serviceContextKey) {
		fields = append(fields, c.service)
	}
	if ent.Caller.Defined {
		if !hasField(fields, sourceLocationKey) {
			fields = append(fields, SourceLocation(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
		}
		if zapcore.ErrorLevel.Enabled(ent.Level) && !hasField(fields, contextKey) {
			fields = append(fields, ErrorReport(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
		}
	}
	return c.Core.Write(ent, fields)
}

// Sync flushes buffered logs (if any).
func (c *core) Sync() error {
	return c.Core.Sync()
}

func hasField(fields []zapcore.Field, key string) bool {
	return slices.ContainsFunc(fields, func(f zapcore.Field) bool { return f.Key == key })
}
