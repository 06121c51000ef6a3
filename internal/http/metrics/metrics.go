package metrics

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"clubform/internal/common"
)

type Collector struct {
	requests    uint64
	errors      uint64
	submissions uint64
	mu          sync.Mutex
	errorCodes  map[common.Code]uint64
}

func NewCollector() *Collector {
	return &Collector{errorCodes: make(map[common.Code]uint64)}
}

func (c *Collector) IncRequests() {
	atomic.AddUint64(&c.requests, 1)
}

// IncErrors counts 5xx responses.
func (c *Collector) IncErrors() {
	atomic.AddUint64(&c.errors, 1)
}

func (c *Collector) IncSubmissions() {
	atomic.AddUint64(&c.submissions, 1)
}

func (c *Collector) IncErrorCode(code common.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCodes[code]++
}

type Snapshot struct {
	Requests    uint64
	Errors      uint64
	Submissions uint64
	ErrorCodes  map[common.Code]uint64
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	codes := make(map[common.Code]uint64, len(c.errorCodes))
	for code, count := range c.errorCodes {
		codes[code] = count
	}
	c.mu.Unlock()
	return Snapshot{
		Requests:    atomic.LoadUint64(&c.requests),
		Errors:      atomic.LoadUint64(&c.errors),
		Submissions: atomic.LoadUint64(&c.submissions),
		ErrorCodes:  codes,
	}
}

// WriteText renders the snapshot in the Prometheus text exposition format.
func (s Snapshot) WriteText(w io.Writer) {
	_, _ = fmt.Fprintf(w, "# HELP clubform_requests_total Total number of HTTP requests.\n")
	_, _ = fmt.Fprintf(w, "# TYPE clubform_requests_total counter\n")
	_, _ = fmt.Fprintf(w, "clubform_requests_total %d\n", s.Requests)
	_, _ = fmt.Fprintf(w, "# HELP clubform_errors_total Total number of 5xx HTTP responses.\n")
	_, _ = fmt.Fprintf(w, "# TYPE clubform_errors_total counter\n")
	_, _ = fmt.Fprintf(w, "clubform_errors_total %d\n", s.Errors)
	_, _ = fmt.Fprintf(w, "# HELP clubform_applications_submitted_total Applications stored.\n")
	_, _ = fmt.Fprintf(w, "# TYPE clubform_applications_submitted_total counter\n")
	_, _ = fmt.Fprintf(w, "clubform_applications_submitted_total %d\n", s.Submissions)
	_, _ = fmt.Fprintf(w, "# HELP clubform_error_responses_total Error responses by code.\n")
	_, _ = fmt.Fprintf(w, "# TYPE clubform_error_responses_total counter\n")
	codes := make([]string, 0, len(s.ErrorCodes))
	for code := range s.ErrorCodes {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	for _, code := range codes {
		_, _ = fmt.Fprintf(w, "clubform_error_responses_total{code=%q} %d\n", code, s.ErrorCodes[common.Code(code)])
	}
}
