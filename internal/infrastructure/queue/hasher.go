// Package queue bounds the CPU-heavy bcrypt work behind a fixed-size worker
// pool so that a burst of registrations or logins cannot starve the rest of
// the server, while still allowing hash operations to run concurrently.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamevault/review-system/internal/api/metrics"
)

const (
	// PasswordCost is the bcrypt work factor. Fixed at build time, not
	// user-configurable.
	PasswordCost = 10

	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrPoolStopped is returned when a job is submitted after the pool's
// context was cancelled.
var ErrPoolStopped = errors.New("hash pool stopped")

type hashOp int

const (
	opHash hashOp = iota
	opCompare
)

type hashResult struct {
	hash string
	err  error
}

type hashJob struct {
	op        hashOp
	plaintext string
	hashed    string
	reply     chan hashResult
}

// HashPool implements ports.PasswordHasher over a bounded set of workers
// sharing one job channel.
type HashPool struct {
	jobs    chan hashJob
	workers int
	log     zerolog.Logger
	done    <-chan struct{}
}

// NewHashPool creates a pool with numWorkers workers. If numWorkers <= 0,
// defaultWorkers is used. Start must be called before the first job.
func NewHashPool(numWorkers int, log zerolog.Logger) *HashPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &HashPool{
		jobs:    make(chan hashJob, channelBuffer),
		workers: numWorkers,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (p *HashPool) Start(ctx context.Context) {
	p.done = ctx.Done()
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx, i)
	}
	p.log.Debug().Int("workers", p.workers).Msg("hash pool started")
}

// Hash computes a salted bcrypt hash of plaintext.
func (p *HashPool) Hash(ctx context.Context, plaintext string) (string, error) {
	res, err := p.submit(ctx, hashJob{op: opHash, plaintext: plaintext})
	if err != nil {
		return "", err
	}
	return res.hash, res.err
}

// Compare returns nil iff plaintext reproduces hashed. The comparison is the
// library's constant-time check; no short-circuit on mismatch position.
func (p *HashPool) Compare(ctx context.Context, hashed, plaintext string) error {
	res, err := p.submit(ctx, hashJob{op: opCompare, hashed: hashed, plaintext: plaintext})
	if err != nil {
		return err
	}
	return res.err
}

func (p *HashPool) submit(ctx context.Context, job hashJob) (hashResult, error) {
	job.reply = make(chan hashResult, 1)

	select {
	case p.jobs <- job:
		metrics.HashQueueDepth.Set(float64(len(p.jobs)))
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	case <-p.done:
		return hashResult{}, ErrPoolStopped
	}

	select {
	case res := <-job.reply:
		return res, nil
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	case <-p.done:
		return hashResult{}, ErrPoolStopped
	}
}

func (p *HashPool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			metrics.HashQueueDepth.Set(float64(len(p.jobs)))
			job.reply <- p.execute(job)
		}
	}
}

func (p *HashPool) execute(job hashJob) hashResult {
	start := time.Now()
	defer func() {
		metrics.HashDuration.WithLabelValues(opName(job.op)).Observe(time.Since(start).Seconds())
	}()

	switch job.op {
	case opCompare:
		return hashResult{err: bcrypt.CompareHashAndPassword([]byte(job.hashed), []byte(job.plaintext))}
	default:
		h, err := bcrypt.GenerateFromPassword([]byte(job.plaintext), PasswordCost)
		if err != nil {
			p.log.Error().Err(err).Msg("bcrypt hash failed")
			return hashResult{err: err}
		}
		return hashResult{hash: string(h)}
	}
}

func opName(op hashOp) string {
	if op == opCompare {
		return "compare"
	}
	return "hash"
}
