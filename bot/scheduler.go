package bot

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const statsInterval = 5 * time.Minute

var (
	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moderation_infractions",
		Help: "Number of infractions in the catalog.",
	})
	recordCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moderation_punishment_records",
		Help: "Number of punishment records in the audit log.",
	})
)

// StatsSource reports the size of the catalog and of the audit log.
type StatsSource interface {
	Counts(ctx context.Context) (infractions int, records int, err error)
}

// Scheduler refreshes store gauges in the background.
type Scheduler struct {
	source   StatsSource
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewScheduler(source StatsSource, interval time.Duration) *Scheduler {
	return &Scheduler{
		source:   source,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start refreshes the gauges once and then on every tick.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

// Stop terminates the background loop and waits for it. Safe to call twice.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		log.Println("[Scheduler] Stopping scheduler...")
		close(s.done)
	})
	s.wg.Wait()
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.updateStoreStats()
	for {
		select {
		case <-ticker.C:
			s.updateStoreStats()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) updateStoreStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	infractions, records, err := s.source.Counts(ctx)
	if err != nil {
		log.Printf("[Scheduler] Failed to update store stats: %v", err)
		return
	}
	catalogSize.Set(float64(infractions))
	recordCount.Set(float64(records))
}
