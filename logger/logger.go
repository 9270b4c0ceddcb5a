package logger

import (
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
	"os"
)

func CreateLogger(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(val); err == nil {
			l.SetLevel(level)
		}
	}
	l.SetFormatter(&ecslogrus.Formatter{})
	l.AddHook(serviceHook{serviceName: serviceName})
	return l
}

type serviceHook struct {
	serviceName string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(e *logrus.Entry) error {
	e.Data["service.name"] = h.serviceName
	return nil
}
