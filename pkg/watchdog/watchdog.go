// Package watchdog samples system memory and publishes pressure-level
// transitions. The worker pool refuses new leases at reject, background
// sweeps pause at pause, and emergency cancels non-critical in-flight
// work.
package watchdog

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Sample is one memory reading.
type Sample struct {
	UsedPercent float64
	FreeMb      int
}

// Sampler reads current memory usage. Tests substitute fakes.
type Sampler interface {
	Sample() (Sample, error)
}

// systemSampler reads virtual memory via gopsutil.
type systemSampler struct{}

func (systemSampler) Sample() (Sample, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		UsedPercent: vm.UsedPercent,
		FreeMb:      int(vm.Available / (1024 * 1024)),
	}, nil
}

// Subscriber receives pressure-level transitions.
type Subscriber func(level models.MemoryPressureLevel)

// Watchdog periodically samples memory and notifies subscribers when
// the pressure level changes.
type Watchdog struct {
	cfg     *config.MemoryConfig
	sampler Sampler

	mu          sync.Mutex
	level       models.MemoryPressureLevel
	subscribers []Subscriber
}

// New creates a watchdog over the system memory sampler.
func New(cfg *config.MemoryConfig) *Watchdog {
	return &Watchdog{cfg: cfg, sampler: systemSampler{}, level: models.PressureNormal}
}

// NewWithSampler creates a watchdog with a custom sampler.
func NewWithSampler(cfg *config.MemoryConfig, sampler Sampler) *Watchdog {
	return &Watchdog{cfg: cfg, sampler: sampler, level: models.PressureNormal}
}

// Subscribe registers a transition callback. Callbacks run on the
// sampling goroutine and must not block.
func (w *Watchdog) Subscribe(sub Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, sub)
}

// Level returns the current pressure level.
func (w *Watchdog) Level() models.MemoryPressureLevel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.level
}

// Start runs the sampling loop until ctx is cancelled.
func (w *Watchdog) Start(ctx context.Context) {
	interval := w.cfg.SampleInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("Memory watchdog started",
		"warn_pct", w.cfg.WarnPct,
		"pause_pct", w.cfg.PausePct,
		"reject_pct", w.cfg.RejectPct,
		"emergency_free_mb", w.cfg.EmergencyFreeMb)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

// tick takes one sample and publishes a transition if the level moved.
func (w *Watchdog) tick() {
	sample, err := w.sampler.Sample()
	if err != nil {
		slog.Warn("Memory sample failed", "error", err)
		return
	}
	level := w.classify(sample)

	w.mu.Lock()
	previous := w.level
	if level == previous {
		w.mu.Unlock()
		return
	}
	w.level = level
	subs := make([]Subscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.Unlock()

	slog.Warn("Memory pressure transition",
		"from", previous,
		"to", level,
		"used_pct", sample.UsedPercent,
		"free_mb", sample.FreeMb)

	if level == models.PressureEmergency {
		debug.FreeOSMemory()
	}
	for _, sub := range subs {
		sub(level)
	}
}

// classify maps a sample onto a pressure level. The free-memory floor
// dominates the percentage thresholds.
func (w *Watchdog) classify(s Sample) models.MemoryPressureLevel {
	switch {
	case w.cfg.EmergencyFreeMb > 0 && s.FreeMb < w.cfg.EmergencyFreeMb:
		return models.PressureEmergency
	case s.UsedPercent >= float64(w.cfg.RejectPct):
		return models.PressureReject
	case s.UsedPercent >= float64(w.cfg.PausePct):
		return models.PressurePause
	case s.UsedPercent >= float64(w.cfg.WarnPct):
		return models.PressureWarn
	}
	return models.PressureNormal
}
