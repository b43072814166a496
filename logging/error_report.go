package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const contextKey = "context"

// ErrorReport Error Reporting context Field
func ErrorReport(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(contextKey, newReportContext(pc, file, line, ok))
}

type reportContext struct {
	ReportLocation reportLocation `json:"reportLocation"`
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (c reportContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return enc.AddObject("reportLocation", c.ReportLocation)
}

// reportLocation Error Reportingはsource locationと異なるキー名を要求する
type reportLocation sourceLocation

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (l reportLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("filePath", l.File)
	enc.AddString("lineNumber", l.Line)
	enc.AddString("functionName", l.Function)
	return nil
}

func newReportContext(pc uintptr, file string, line int, ok bool) *reportContext {
	loc := newSourceLocation(pc, file, line, ok)
	if loc == nil {
		return nil
	}
	return &reportContext{ReportLocation: reportLocation(*loc)}
}
