package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Options - параметры логгера. Пустые поля берутся из окружения.
type Options struct {
	Level  string    // LOG_LEVEL: debug, info, warn...
	Format string    // LOG_FORMAT: json или text
	Output io.Writer // по умолчанию os.Stdout
}

// Init инициализирует глобальный логгер из переменных окружения.
// Должна быть вызвана один раз при старте приложения.
func Init() {
	InitWith(Options{})
}

// InitWith инициализирует логгер с явными параметрами (флаги CLI перекрывают окружение)
func InitWith(opts Options) {
	Log = logrus.New()

	// 1. Уровень логирования. По умолчанию - "info".
	logLevel := opts.Level
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" - для продакшена, "text" - для разработки.
	logFormat := opts.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

// For возвращает логгер с полем component
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
