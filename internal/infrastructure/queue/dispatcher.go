package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/infrastructure/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher is the mail outbox. Mails are routed to a fixed set of workers by
// hashing the recipient, so mails to one address are sent in enqueue order.
type Dispatcher struct {
	workers []chan domain.Mail
	sender  ports.MailSender
	log     zerolog.Logger
	wg      sync.WaitGroup
}

var _ ports.MailOutbox = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.MailSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Mail, numWorkers),
		sender:  sender,
		log:     log.With().Str("component", "mail_outbox").Logger(),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Mail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a mail to the worker responsible for its recipient. It never
// blocks: when the worker's channel is full the mail is dropped and counted.
func (d *Dispatcher) Enqueue(mail domain.Mail) {
	idx := d.shardIndex(mail.To)
	select {
	case d.workers[idx] <- mail:
		metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.MailsTotal.WithLabelValues(string(mail.Kind), "dropped").Inc()
		d.log.Warn().
			Str("kind", string(mail.Kind)).
			Int("worker_id", idx).
			Msg("mail outbox full, mail dropped")
	}
}

// Check reports an error when a worker channel is close to full, meaning the
// sender is falling behind. It is used as a readiness probe.
func (d *Dispatcher) Check(context.Context) error {
	for i, ch := range d.workers {
		if len(ch) >= cap(ch)*9/10 {
			return fmt.Errorf("mail worker %d backlog %d/%d", i, len(ch), cap(ch))
		}
	}
	return nil
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Mail) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case mail, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.sender.Send(ctx, mail); err != nil {
				metrics.MailsTotal.WithLabelValues(string(mail.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(mail.Kind)).
					Int("worker_id", id).
					Msg("mail delivery failed")
				continue
			}
			metrics.MailsTotal.WithLabelValues(string(mail.Kind), "sent").Inc()
		}
	}
}
