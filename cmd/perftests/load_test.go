package perftests

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LoadScenario defines configurable load parameters
type LoadScenario struct {
	Name        string
	NumUsers    int
	NumAuctions int
	ReadRatio   int // out of 10
	RateRatio   int // out of 10, the rest places bids
	Burst       bool
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()
	if len(om.latencies) == 0 {
		return
	}
	latencies := append([]time.Duration(nil), om.latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)-1))]
	p99 = latencies[int(0.99*float64(len(latencies)-1))]
	return
}

// Benchmark_Load_Marketplace runs multiple scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{Name: "Low-Contention-WriteHeavy", NumUsers: 200, NumAuctions: 200, ReadRatio: 0, RateRatio: 5},
		{Name: "High-Contention-Ratings", NumUsers: 500, NumAuctions: 5, ReadRatio: 0, RateRatio: 10},
		{Name: "Mixed-Workload", NumUsers: 300, NumAuctions: 50, ReadRatio: 6, RateRatio: 2},
		{Name: "ReadHeavy", NumUsers: 200, NumAuctions: 50, ReadRatio: 9, RateRatio: 1},
		{Name: "Peak-Burst", NumUsers: 500, NumAuctions: 50, ReadRatio: 2, RateRatio: 4, Burst: true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, ids := seedMarketplace(b, s.NumAuctions)
	ctx := context.Background()

	var totalOps, bids, ratings, reads, failures int64
	metrics := &OperationMetrics{}

	b.ResetTimer()
	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			auctionID := ids[rnd.Intn(len(ids))]
			actor := user(uint(rnd.Intn(s.NumUsers)) + 2)
			opType := rnd.Intn(10)

			opStart := time.Now()
			var err error
			switch {
			case opType < s.ReadRatio:
				_, err = svc.GetAuction(ctx, auctionID)
				atomic.AddInt64(&reads, 1)
			case opType < s.ReadRatio+s.RateRatio:
				_, err = svc.RateAuction(ctx, actor, auctionID, rnd.Intn(5)+1)
				atomic.AddInt64(&ratings, 1)
			default:
				_, err = svc.PlaceBid(ctx, actor, auctionID, float64(100+rnd.Intn(50)))
				atomic.AddInt64(&bids, 1)
			}
			if err != nil {
				atomic.AddInt64(&failures, 1)
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Bids: %d | Ratings: %d | Reads: %d | Failures: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, bids, ratings, reads, failures, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}

// TestLoad_ConcurrentRatingsKeepMean hammers one auction with rating upserts and
// checks the stored mean matches the final per-user values.
func TestLoad_ConcurrentRatingsKeepMean(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}
	svc, ids := seedMarketplace(t, 1)
	ctx := context.Background()
	auctionID := ids[0]

	const numUsers = 50
	const roundsPerUser = 20

	var wg sync.WaitGroup
	for u := 0; u < numUsers; u++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(int64(userID)))
			for r := 0; r < roundsPerUser-1; r++ {
				_, err := svc.RateAuction(ctx, user(userID), auctionID, rnd.Intn(5)+1)
				assert.NoError(t, err)
			}
			// every user settles on a value derived from their id
			_, err := svc.RateAuction(ctx, user(userID), auctionID, int(userID%5)+1)
			assert.NoError(t, err)
		}(uint(u + 2))
	}
	wg.Wait()

	var values []int
	for u := 0; u < numUsers; u++ {
		values = append(values, (u+2)%5+1)
	}

	ratings, err := svc.ListRatings(ctx, auctionID)
	require.NoError(t, err)
	require.Len(t, ratings, numUsers)

	auction, err := svc.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.Equal(t, model.AverageRating(values), auction.Rating)
}
