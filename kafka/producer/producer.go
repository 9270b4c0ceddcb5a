package producer

import (
	"context"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"os"
	"sync"
)

// Provider yields a message producer for the topic named by the environment variable token.
type Provider func(token string) producer.MessageProducer

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type writerFactory func(brokers string, topic string) writer

func newWriter(brokers string, topic string) writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		return providerWith(l, ctx, newWriter)
	}
}

// providerWith keeps one writer per topic for the lifetime of ctx.
func providerWith(l logrus.FieldLogger, ctx context.Context, wf writerFactory) Provider {
	var mu sync.Mutex
	writers := make(map[string]writer)

	go func() {
		<-ctx.Done()
		mu.Lock()
		defer mu.Unlock()
		for topic, w := range writers {
			if err := w.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close writer for [%s].", topic)
			}
			delete(writers, topic)
		}
	}()

	return func(token string) producer.MessageProducer {
		brokers := os.Getenv("BOOTSTRAP_SERVERS")
		topic := os.Getenv(token)
		if brokers == "" || topic == "" {
			l.Debugf("Kafka not configured for [%s], messages will be discarded.", token)
			return discard
		}

		mu.Lock()
		w, ok := writers[topic]
		if !ok {
			w = wf(brokers, topic)
			writers[topic] = w
		}
		mu.Unlock()

		return func(provider model.Provider[[]kafka.Message]) error {
			ms, err := provider()
			if err != nil {
				return err
			}
			err = w.WriteMessages(ctx, ms...)
			if err != nil {
				l.WithError(err).Errorf("Unable to emit [%d] messages to [%s].", len(ms), topic)
				return err
			}
			return nil
		}
	}
}

func discard(provider model.Provider[[]kafka.Message]) error {
	_, err := provider()
	return err
}
