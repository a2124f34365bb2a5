// seehuhn.de/go/heatmap - route density textures for globe rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package worker runs heatmap computations on dedicated goroutines.
//
// A [Worker] owns its own rasterizer settings and processes one job at a
// time.  A [Pool] runs several workers which share nothing but the job
// channel.  Jobs are not cancelled once started: a caller who no longer
// needs a result can stop waiting for it, but the computation runs to
// completion.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/heatmap"
)

// Job is a request together with the channel which receives its result.
type Job struct {
	ID      uuid.UUID
	Request heatmap.Request
	Reply   chan<- Result
}

// Result is the outcome of one job.
type Result struct {
	ID       uuid.UUID
	Response *heatmap.Response
	Err      error
}

// NewJob creates a job with a fresh ID.  The returned channel receives
// exactly one result; it is buffered so that workers never block on it.
func NewJob(req heatmap.Request) (Job, <-chan Result) {
	reply := make(chan Result, 1)
	return Job{ID: uuid.New(), Request: req, Reply: reply}, reply
}

// Worker computes heatmaps for jobs, one at a time.
type Worker struct {
	r heatmap.Rasterizer
}

// New returns a worker using a copy of the given settings.
// If r is nil, the defaults are used.
func New(r *heatmap.Rasterizer) *Worker {
	if r == nil {
		r = heatmap.NewRasterizer()
	}
	return &Worker{r: *r}
}

// Do computes the result for a single job.
func (w *Worker) Do(job Job) Result {
	start := time.Now()
	resp, err := w.r.Compute(job.Request)

	log := heatmap.Logger()
	if err != nil {
		log.Warn("job failed", "id", job.ID, "err", err)
	} else {
		log.Debug("job done", "id", job.ID,
			"routes", job.Request.Routes.Len(),
			"width", resp.Width, "height", resp.Height,
			"elapsed", time.Since(start))
	}
	return Result{ID: job.ID, Response: resp, Err: err}
}

// Serve processes jobs until the channel is closed or ctx is done.  It
// returns nil when the channel was closed and ctx.Err() otherwise.
// A job which has started is always completed.
func (w *Worker) Serve(ctx context.Context, jobs <-chan Job) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-jobs:
			if !ok {
				return nil
			}
			res := w.Do(job)
			if job.Reply != nil {
				job.Reply <- res
			}
		}
	}
}

// Pool runs several workers on a shared job channel.
type Pool struct {
	workers []*Worker
}

// NewPool creates a pool of n workers, each with its own copy of r.
// At least one worker is created.
func NewPool(n int, r *heatmap.Rasterizer) *Pool {
	n = max(n, 1)
	p := &Pool{workers: make([]*Worker, n)}
	for i := range p.workers {
		p.workers[i] = New(r)
	}
	return p
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Run serves jobs on all workers until the channel is closed or ctx is
// done.  It returns nil if the channel was closed.
func (p *Pool) Run(ctx context.Context, jobs <-chan Job) error {
	log := heatmap.Logger()
	log.Info("worker pool starting", "workers", len(p.workers))

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range p.workers {
		g.Go(func() error {
			return w.Serve(ctx, jobs)
		})
	}
	err := g.Wait()

	log.Info("worker pool stopped", "err", err)
	return err
}

// ErrClosed is returned by Submit if ctx ends before the job was accepted.
var ErrClosed = errors.New("worker: job not accepted")

// Submit sends a request to the job channel and waits for its result.  If
// ctx ends first, Submit returns early with the context's error; a job
// which was already accepted still runs to completion and its result is
// discarded.
func Submit(ctx context.Context, jobs chan<- Job, req heatmap.Request) (*heatmap.Response, error) {
	job, reply := NewJob(req)
	select {
	case jobs <- job:
	case <-ctx.Done():
		return nil, errors.Join(ErrClosed, ctx.Err())
	}

	select {
	case res := <-reply:
		return res.Response, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
