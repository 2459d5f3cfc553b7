package queue

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
)

type recordingSender struct {
	mu    sync.Mutex
	mails []domain.Mail
	fail  map[string]bool
	done  chan struct{}
}

func newRecordingSender(expected int) *recordingSender {
	return &recordingSender{fail: map[string]bool{}, done: make(chan struct{}, expected)}
}

func (s *recordingSender) Send(_ context.Context, mail domain.Mail) error {
	defer func() { s.done <- struct{}{} }()
	if s.fail[mail.To] {
		return errors.New("smtp down")
	}
	s.mu.Lock()
	s.mails = append(s.mails, mail)
	s.mu.Unlock()
	return nil
}

func (s *recordingSender) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for mail %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_PerRecipientOrdering(t *testing.T) {
	sender := newRecordingSender(30)
	d := NewDispatcher(3, sender, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i := 0; i < 10; i++ {
		for _, r := range recipients {
			d.Enqueue(domain.Mail{Kind: domain.MailVerification, To: r, Token: string(rune('a' + i))})
		}
	}
	sender.wait(t, 30)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	last := map[string]string{}
	for _, m := range sender.mails {
		if prev, ok := last[m.To]; ok && m.Token <= prev {
			t.Fatalf("mails to %s out of order: %q after %q", m.To, m.Token, prev)
		}
		last[m.To] = m.Token
	}
}

func TestDispatcher_FailureDoesNotStopWorker(t *testing.T) {
	sender := newRecordingSender(2)
	sender.fail["bad@example.com"] = true
	d := NewDispatcher(1, sender, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(domain.Mail{Kind: domain.MailPasswordReset, To: "bad@example.com"})
	d.Enqueue(domain.Mail{Kind: domain.MailPasswordReset, To: "good@example.com"})
	sender.wait(t, 2)

	cancel()
	d.Wait()

	if len(sender.mails) != 1 || sender.mails[0].To != "good@example.com" {
		t.Fatalf("unexpected deliveries %+v", sender.mails)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, newRecordingSender(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	if d.shardIndex("x@example.com") != d.shardIndex("x@example.com") {
		t.Fatalf("shard index must be deterministic")
	}
}

func TestLogSender_IncludesToken(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(zerolog.New(&buf))
	_ = s.Send(context.Background(), domain.Mail{Kind: domain.MailVerification, To: "a@example.com", Token: "tok-1"})
	if !strings.Contains(buf.String(), `"token":"tok-1"`) {
		t.Fatalf("token missing from log line: %s", buf.String())
	}
}

func TestDispatcher_CheckReportsBacklog(t *testing.T) {
	d := NewDispatcher(1, newRecordingSender(0), zerolog.Nop())
	if err := d.Check(context.Background()); err != nil {
		t.Fatalf("empty outbox must be ready: %v", err)
	}

	// Workers are not started, so every mail stays queued.
	for i := 0; i < channelBuffer*9/10; i++ {
		d.Enqueue(domain.Mail{Kind: domain.MailVerification, To: "a@example.com"})
	}
	if err := d.Check(context.Background()); err == nil {
		t.Fatalf("expected a backlog error")
	}
}

func TestDispatcher_EnqueueDropsWhenFull(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(1, newRecordingSender(0), zerolog.New(&buf))

	// Workers are not started, so the channel fills up.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+5; i++ {
			d.Enqueue(domain.Mail{Kind: domain.MailVerification, To: "a@example.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full outbox")
	}
	if n := len(d.workers[0]); n != channelBuffer {
		t.Fatalf("expected a full channel, got %d", n)
	}
	if !strings.Contains(buf.String(), "mail dropped") {
		t.Fatalf("expected a drop warning, got %q", buf.String())
	}
}
