package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus entry with the given level and an optional
// subsystem hook that prefixes every message.
func NewLogger(level string, hook logrus.Hook) *logrus.Entry {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}

	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if hook != nil {
		log.AddHook(hook)
	}

	return logrus.NewEntry(log)
}

type MainLogHook struct{}

func (h *MainLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Main: " + entry.Message
	return nil
}

func (h *MainLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
