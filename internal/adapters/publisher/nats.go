package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/domain"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes computed day sheets as JSON on
// "<prefix>.<trip>.<date>". It implements ports.SheetPublisher.
type NATSPublisher struct {
	nc          *nats.Conn
	prefix      string
	logSubjects bool
	metrics     PublisherMetrics
}

type PublisherMetrics interface {
	NATSPublishedInc()
	NATSPublishErrInc()
	PublishObserve(d time.Duration)
	NATSSetConnected(connected bool)
}

func NewNATSPublisher(url, prefix string, logSubjects bool, m PublisherMetrics) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("hos-recap-service"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			log.Printf("nats disconnected err=%v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(true)
			}
			log.Printf("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			log.Printf("nats closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats publisher: connect %q: %w", url, err)
	}
	if m != nil {
		m.NATSSetConnected(true)
	}

	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = "hos.sheets"
	}

	return &NATSPublisher{nc: nc, prefix: prefix, logSubjects: logSubjects, metrics: m}, nil
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

func (p *NATSPublisher) PublishSheet(ctx context.Context, tripID string, sheet domain.DaySheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := Subject(p.prefix, tripID, sheet.Date)
	b, err := json.Marshal(dto.NewDaySheetResponse(sheet))
	if err != nil {
		return fmt.Errorf("publish sheet: marshal: %w", err)
	}
	if p.logSubjects {
		log.Printf("nats publish subject=%s bytes=%d", subject, len(b))
	}

	start := time.Now()
	err = p.nc.Publish(subject, b)
	if p.metrics != nil {
		p.metrics.PublishObserve(time.Since(start))
		if err != nil {
			p.metrics.NATSPublishErrInc()
		} else {
			p.metrics.NATSPublishedInc()
		}
	}
	if err != nil {
		return fmt.Errorf("publish sheet: subject %s: %w", subject, err)
	}
	return nil
}

// Subject builds a NATS subject from the prefix and sanitized tokens.
func Subject(prefix string, tokens ...string) string {
	parts := make([]string, 0, len(tokens)+1)
	parts = append(parts, prefix)
	for _, t := range tokens {
		parts = append(parts, subjectToken(t))
	}
	return strings.Join(parts, ".")
}

func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	// NATS tokens cannot contain whitespace, '.', '>' or '*'.
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
