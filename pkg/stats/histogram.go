package stats

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	log "github.com/sirupsen/logrus"

	"github.com/morningli/linked_lists/pkg/common"
)

const (
	bucketNum = 10
	minValue  = 1
	// maxValue is ten seconds in nanoseconds.
	maxValue = int64(10 * time.Second)
)

// Percentiles reported by Summary.
var Percentiles = []float64{90, 95, 99}

// HistogramRecorder collects operation latencies per operation name in
// windowed HDR histograms. It is safe for concurrent use.
type HistogramRecorder struct {
	mux        sync.Mutex
	histograms map[string]*hdrhistogram.WindowedHistogram
}

var _ common.Recorder = (*HistogramRecorder)(nil)

func NewHistogramRecorder() *HistogramRecorder {
	return &HistogramRecorder{histograms: map[string]*hdrhistogram.WindowedHistogram{}}
}

func (r *HistogramRecorder) Record(op string, d time.Duration) {
	v := int64(d)
	if v < minValue {
		v = minValue
	}

	r.mux.Lock()
	defer r.mux.Unlock()

	h, ok := r.histograms[op]
	if !ok {
		h = hdrhistogram.NewWindowed(bucketNum, minValue, maxValue, 2)
		r.histograms[op] = h
	}
	if err := h.Current.RecordValue(v); err != nil {
		log.Errorf("record %s latency fail, err:%s", op, err.Error())
	}
}

// Rotate starts a new window for every operation.
func (r *HistogramRecorder) Rotate() {
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, h := range r.histograms {
		h.Rotate()
	}
}

// Summary describes the latencies of one operation across all windows.
type Summary struct {
	Op          string
	Count       int64
	Max         int64
	Percentiles map[float64]int64
}

// Summaries returns one Summary per recorded operation, sorted by name.
func (r *HistogramRecorder) Summaries() []Summary {
	r.mux.Lock()
	defer r.mux.Unlock()

	out := make([]Summary, 0, len(r.histograms))
	for op, h := range r.histograms {
		merged := h.Merge()
		out = append(out, Summary{
			Op:          op,
			Count:       merged.TotalCount(),
			Max:         merged.Max(),
			Percentiles: merged.ValueAtPercentiles(Percentiles),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out
}

// Report logs every Summary at info level.
func (r *HistogramRecorder) Report() {
	for _, s := range r.Summaries() {
		fields := log.Fields{"count": s.Count, "max_ns": s.Max}
		for _, p := range Percentiles {
			fields[percentileKey(p)] = s.Percentiles[p]
		}
		log.WithFields(fields).Infof("[Stats]%s", s.Op)
	}
}

func percentileKey(p float64) string {
	return fmt.Sprintf("p%g_ns", p)
}
