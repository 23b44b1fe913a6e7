package messages

import "github.com/sirupsen/logrus"

type MessagesLogHook struct{}

func (h *MessagesLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Messages: " + entry.Message
	return nil
}

func (h *MessagesLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
