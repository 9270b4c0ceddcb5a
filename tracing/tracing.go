package tracing

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
	"io"
)

type logrusAdapter struct {
	l logrus.FieldLogger
}

func (a logrusAdapter) Error(msg string) {
	a.l.Error(msg)
}

func (a logrusAdapter) Infof(msg string, args ...interface{}) {
	a.l.Debugf(msg, args...)
}

func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			l.WithError(err).Errorf("Unable to read tracing configuration from environment.")
			return nil, err
		}
		cfg.ServiceName = serviceName
		if cfg.Sampler == nil || cfg.Sampler.Type == "" {
			cfg.Sampler = &config.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}
		}

		tracer, closer, err := cfg.NewTracer(config.Logger(logrusAdapter{l: l}))
		if err != nil {
			l.WithError(err).Errorf("Unable to create tracer.")
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

func Teardown(l logrus.FieldLogger) func(tc io.Closer) func() {
	return func(tc io.Closer) func() {
		return func() {
			if tc == nil {
				return
			}
			if err := tc.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close tracer.")
			}
		}
	}
}
