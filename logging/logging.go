// Package logging настраивает общий логгер приложения поверх zap:
// человекочитаемый вывод в консоль плюс файл с ротацией.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.SugaredLogger

// Init инициализирует логгер пакета. Файл ротируется по 1 МБ, чтобы журнал
// не разрастался между запусками.
func Init(level, file string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    1, // МБ
		MaxBackups: 3,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), lvl),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), fileSink, lvl),
	)

	log = zap.New(core, zap.AddCallerSkip(1)).Sugar()
	return nil
}

// ensure запасной логгер, если Init не вызывали (например в тестах)
func ensure() *zap.SugaredLogger {
	if log == nil {
		fallback, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = fallback.Sugar()
	}
	return log
}

// Sync сбрасывает буферизованные записи
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func Debug(args ...interface{}) {
	ensure().Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	ensure().Debugf(template, args...)
}

func Info(args ...interface{}) {
	ensure().Info(args...)
}

func Infof(template string, args ...interface{}) {
	ensure().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	ensure().Warnf(template, args...)
}

func Error(args ...interface{}) {
	ensure().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	ensure().Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	ensure().Fatalf(template, args...)
}
