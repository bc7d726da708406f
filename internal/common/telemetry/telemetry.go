// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/wellnessgarden/guide/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	retrievalTotal     *expvar.Int
	retrievalLatencyMS *expvar.Int

	generationTotal   *expvar.Map
	generationLatency *expvar.Map

	storyChecksTotal  *expvar.Int
	storyBlockedTotal *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		retrievalTotal = expvar.NewInt("guide_retrieval_total")
		retrievalLatencyMS = expvar.NewInt("guide_retrieval_latency_ms")

		generationTotal = expvar.NewMap("guide_generation_total")
		generationLatency = expvar.NewMap("guide_generation_latency_ms")

		storyChecksTotal = expvar.NewInt("guide_story_checks_total")
		storyBlockedTotal = expvar.NewInt("guide_story_blocked_total")
	})
}

// StartSpan opens a lightweight logging span. The returned function closes
// the span and accepts extra slog attributes for the closing record.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		if sp == nil {
			return
		}
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordRetrieval counts one knowledge-base lookup.
func RecordRetrieval(duration time.Duration) {
	ensureInit()
	retrievalTotal.Add(1)
	if duration > 0 {
		retrievalLatencyMS.Add(duration.Milliseconds())
	}
}

// RecordGeneration counts one generation attempt keyed by outcome, e.g.
// "ok", "fallback", "credential_missing", "credential_invalid".
func RecordGeneration(outcome string, duration time.Duration) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(outcome))
	if key == "" {
		key = "unknown"
	}
	generationTotal.Add(key, 1)
	if duration > 0 {
		generationLatency.Add(key, duration.Milliseconds())
	}
}

// RecordStoryCheck counts one content screen and whether it blocked.
func RecordStoryCheck(blocked bool) {
	ensureInit()
	storyChecksTotal.Add(1)
	if blocked {
		storyBlockedTotal.Add(1)
	}
}
