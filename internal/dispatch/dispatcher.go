// Package dispatch decides synchronous versus background execution for the
// analytics pipeline and deduplicates redundant work.
//
// Small snapshots compute inline. Above the session threshold the pipeline
// runs in a goroutine and the caller gets a loading response; it re-polls
// with the same request and is served from the result cache once the worker
// publishes. Results for a given period key are published last-request-wins:
// a worker whose input snapshot has been superseded discards its result
// instead of overwriting the newer one.
package dispatch

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/worklens/worklens/internal/analyzer"
	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
)

// Dispatcher defaults.
const (
	DefaultSyncThreshold = 500
	DefaultCacheSize     = 64
	DefaultCacheTTL      = 5 * time.Minute
)

// Params carries every tunable the pipeline needs. All values are explicit;
// the pipeline reads no ambient state.
type Params struct {
	DailyGoal           float64
	BreakCeilingMinutes float64
	ScoreWindowDays     int
	Insights            analyzer.InsightParams
}

// DefaultParams returns the documented defaults relative to now.
func DefaultParams(now time.Time) Params {
	return Params{
		BreakCeilingMinutes: analyzer.DefaultBreakCeilingMinutes,
		ScoreWindowDays:     analyzer.DefaultScoreWindowDays,
		Insights:            analyzer.DefaultInsightParams(now),
	}
}

// Request is one computation over an immutable session snapshot. Window is
// nil for unbounded queries (period.All, or custom bounds that failed to
// resolve, which legitimately yield an empty result).
type Request struct {
	Kind     period.Kind
	Window   *period.Window
	Sessions []session.WorkSession
	Params   Params
}

// Result bundles everything the pipeline produces for one request. Score is
// nil when its window held no sessions.
type Result struct {
	Aggregate  analyzer.PeriodAggregate    `json:"aggregate"`
	Categories []analyzer.CategoryRollup   `json:"categories,omitempty"`
	Insights   analyzer.InsightSet         `json:"insights"`
	Score      *analyzer.ProductivityScore `json:"score,omitempty"`
}

// Response is what Compute hands back immediately. IsLoading means the work
// went to a background worker; the caller re-polls with the same request.
type Response struct {
	Result    *Result
	IsLoading bool
}

// Dispatcher routes computation requests. Safe for concurrent use.
type Dispatcher struct {
	threshold int
	cache     *resultCache
	group     singleflight.Group

	mu       sync.Mutex
	latest   map[string]string
	degraded bool

	workers sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSyncThreshold sets the session count at and above which requests go to
// a background worker.
func WithSyncThreshold(n int) Option {
	return func(d *Dispatcher) { d.threshold = n }
}

// WithCache sizes the result cache.
func WithCache(maxSize int, ttl time.Duration) Option {
	return func(d *Dispatcher) { d.cache = newResultCache(maxSize, ttl) }
}

// New builds a Dispatcher with the default threshold and cache.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		threshold: DefaultSyncThreshold,
		cache:     newResultCache(DefaultCacheSize, DefaultCacheTTL),
		latest:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compute runs the analytics pipeline for the request, inline for small
// snapshots and in a background worker above the threshold. Identical
// requests are served from cache; concurrent identical background requests
// share one execution.
func (d *Dispatcher) Compute(req Request) Response {
	key := requestKey(req)
	fp := fingerprint(key, req.Sessions)

	if res, ok := d.cache.get(fp); ok {
		return Response{Result: &res}
	}

	d.mu.Lock()
	inline := len(req.Sessions) < d.threshold || d.degraded
	if !inline {
		d.latest[key] = fp
	}
	d.mu.Unlock()

	if inline {
		res, err := d.runShared(fp, req)
		if err != nil {
			// A panicking pipeline still must not surface as a failure;
			// the caller gets an empty result.
			return Response{Result: &Result{}}
		}
		d.cache.set(fp, res)
		return Response{Result: &res}
	}

	d.workers.Add(1)
	go func() {
		defer d.workers.Done()
		res, err := d.runShared(fp, req)

		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			// Worker failure degrades the dispatcher to synchronous
			// execution; the caller's next poll recomputes inline.
			d.degraded = true
			if d.latest[key] == fp {
				delete(d.latest, key)
			}
			return
		}
		if d.latest[key] != fp {
			// Superseded while running; a newer snapshot owns this key.
			return
		}
		delete(d.latest, key)
		d.cache.set(fp, res)
	}()
	return Response{IsLoading: true}
}

// Flush blocks until all in-flight background workers have finished.
func (d *Dispatcher) Flush() {
	d.workers.Wait()
}

// runShared executes the pipeline once per fingerprint even under
// concurrent identical requests, converting panics to errors.
func (d *Dispatcher) runShared(fp string, req Request) (Result, error) {
	v, err, _ := d.group.Do(fp, func() (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("analytics pipeline: %v", r)
			}
		}()
		return runPipeline(req), nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// runPipeline is swapped out in tests to exercise the failure path.
var runPipeline = run

// run is the pure pipeline: filter, aggregate, insights, score. It is the
// single code path for both execution modes, so sync and worker runs of the
// same request produce identical results.
func run(req Request) Result {
	filtered := req.Sessions
	window := req.Window
	if window != nil {
		filtered = period.Filter(req.Sessions, *window)
	} else if req.Kind == period.All {
		if span, ok := period.SpanOf(req.Sessions, req.Params.Insights.Now); ok {
			window = &span
		}
	}

	res := Result{
		Aggregate:  analyzer.Aggregate(filtered, window, req.Params.BreakCeilingMinutes),
		Categories: analyzer.ByCategory(filtered),
		Insights:   analyzer.ComputeInsights(filtered, req.Params.Insights),
	}
	if score, ok := analyzer.ComputeScore(req.Sessions, req.Params.Insights.Now, req.Params.ScoreWindowDays, req.Params.DailyGoal, req.Params.BreakCeilingMinutes); ok {
		res.Score = &score
	}
	return res
}

// requestKey identifies the (kind, window) stream a request belongs to,
// independent of the session snapshot.
func requestKey(req Request) string {
	if req.Window == nil {
		return string(req.Kind)
	}
	return fmt.Sprintf("%s:%s/%s",
		req.Kind,
		req.Window.Start.Format(session.DateLayout),
		req.Window.End.Format(session.DateLayout))
}
