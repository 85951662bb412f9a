package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/gamevault/review-system/internal/api/metrics"
)

func startPool(t *testing.T, workers int) *HashPool {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	p := NewHashPool(workers, zerolog.Nop())
	p.Start(ctx)
	return p
}

func TestHashPool_HashAndCompare(t *testing.T) {
	p := startPool(t, 2)
	ctx := context.Background()

	hash, err := p.Hash(ctx, "pw123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw123456" || hash == "" {
		t.Fatalf("expected salted hash, got %q", hash)
	}

	if err := p.Compare(ctx, hash, "pw123456"); err != nil {
		t.Fatalf("compare should match: %v", err)
	}
	if err := p.Compare(ctx, hash, "wrong"); err == nil {
		t.Fatalf("compare should reject wrong password")
	}
}

func TestHashPool_SaltedOutputDiffers(t *testing.T) {
	p := startPool(t, 1)
	ctx := context.Background()

	h1, err := p.Hash(ctx, "pw123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := p.Hash(ctx, "pw123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestHashPool_ConcurrentJobs(t *testing.T) {
	p := startPool(t, 4)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := p.Hash(ctx, "pw123456")
			if err != nil {
				errs <- err
				return
			}
			errs <- p.Compare(ctx, hash, "pw123456")
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent job failed: %v", err)
		}
	}
}

func TestHashPool_Instrumentation(t *testing.T) {
	p := startPool(t, 2)
	ctx := context.Background()

	hash, err := p.Hash(ctx, "pw123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := p.Compare(ctx, hash, "pw123456"); err != nil {
		t.Fatalf("compare: %v", err)
	}

	// Both operation labels observed at least once.
	if got := testutil.CollectAndCount(metrics.HashDuration); got < 2 {
		t.Fatalf("expected hash and compare duration series, got %d", got)
	}
	// Pool is idle again, so the last gauge update reports an empty queue.
	if depth := testutil.ToFloat64(metrics.HashQueueDepth); depth != 0 {
		t.Fatalf("expected empty queue, got depth %v", depth)
	}
}

func TestHashPool_CancelledContext(t *testing.T) {
	p := startPool(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Hash(ctx, "pw"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
