// Package log 是对 logrus 的一层薄封装，统一项目内的日志入口。
// Package log wraps logrus so every package logs through the same entry point.
package log

import (
	"github.com/sirupsen/logrus"
)

type (
	Entry         = logrus.Entry
	Fields        = logrus.Fields
	Level         = logrus.Level
	Logger        = logrus.Logger
	JSONFormatter = logrus.JSONFormatter
	TextFormatter = logrus.TextFormatter
)

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

var (
	SetFormatter = logrus.SetFormatter
	SetLevel     = logrus.SetLevel
	SetOutput    = logrus.SetOutput
	WithField    = logrus.WithField
	WithFields   = logrus.WithFields
	ParseLevel   = logrus.ParseLevel

	Debug  = logrus.Debug
	Debugf = logrus.Debugf
	Info   = logrus.Info
	Infof  = logrus.Infof
	Warn   = logrus.Warn
	Warnf  = logrus.Warnf
	Error  = logrus.Error
	Errorf = logrus.Errorf
	Fatal  = logrus.Fatal
	Fatalf = logrus.Fatalf
)

// CheckErr 在 err 不为空时按给定级别记录日志
// CheckErr logs err with the given level when it is not nil
func CheckErr(level Level, err error) {
	if err == nil {
		return
	}

	switch level {
	case DebugLevel, TraceLevel:
		logrus.Debug(err)
	case InfoLevel:
		logrus.Info(err)
	case WarnLevel:
		logrus.Warn(err)
	case ErrorLevel:
		logrus.Error(err)
	case FatalLevel:
		logrus.Fatal(err)
	case PanicLevel:
		logrus.Panic(err)
	}
}
