package watchdog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

type fakeSampler struct {
	sample Sample
	err    error
}

func (f *fakeSampler) Sample() (Sample, error) { return f.sample, f.err }

func testMemoryConfig() *config.MemoryConfig {
	return &config.MemoryConfig{
		WarnPct:         70,
		PausePct:        80,
		RejectPct:       90,
		EmergencyFreeMb: 256,
	}
}

func TestClassify(t *testing.T) {
	w := NewWithSampler(testMemoryConfig(), &fakeSampler{})

	tests := []struct {
		name   string
		sample Sample
		want   models.MemoryPressureLevel
	}{
		{"idle", Sample{UsedPercent: 30, FreeMb: 8000}, models.PressureNormal},
		{"just below warn", Sample{UsedPercent: 69.9, FreeMb: 8000}, models.PressureNormal},
		{"warn threshold", Sample{UsedPercent: 70, FreeMb: 4000}, models.PressureWarn},
		{"pause threshold", Sample{UsedPercent: 80, FreeMb: 3000}, models.PressurePause},
		{"reject threshold", Sample{UsedPercent: 90, FreeMb: 2000}, models.PressureReject},
		{"free floor dominates", Sample{UsedPercent: 50, FreeMb: 100}, models.PressureEmergency},
		{"high usage and low free", Sample{UsedPercent: 95, FreeMb: 100}, models.PressureEmergency},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.classify(tc.sample))
		})
	}
}

func TestTickNotifiesOnTransitionOnly(t *testing.T) {
	sampler := &fakeSampler{sample: Sample{UsedPercent: 30, FreeMb: 8000}}
	w := NewWithSampler(testMemoryConfig(), sampler)

	var transitions []models.MemoryPressureLevel
	w.Subscribe(func(level models.MemoryPressureLevel) {
		transitions = append(transitions, level)
	})

	w.tick()
	assert.Empty(t, transitions, "steady normal produces no notification")

	sampler.sample = Sample{UsedPercent: 85, FreeMb: 2000}
	w.tick()
	w.tick()
	assert.Equal(t, []models.MemoryPressureLevel{models.PressurePause}, transitions,
		"a steady level notifies once")

	sampler.sample = Sample{UsedPercent: 40, FreeMb: 8000}
	w.tick()
	assert.Equal(t, models.PressureNormal, w.Level())
	assert.Len(t, transitions, 2)
}

func TestTickIgnoresSampleErrors(t *testing.T) {
	sampler := &fakeSampler{sample: Sample{UsedPercent: 95, FreeMb: 100}}
	w := NewWithSampler(testMemoryConfig(), sampler)
	w.tick()
	assert.Equal(t, models.PressureEmergency, w.Level())

	sampler.err = assert.AnError
	sampler.sample = Sample{UsedPercent: 10, FreeMb: 9000}
	w.tick()
	assert.Equal(t, models.PressureEmergency, w.Level(), "a failed sample keeps the last level")
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, models.PressureNormal.Severity(), models.PressureWarn.Severity())
	assert.Less(t, models.PressureWarn.Severity(), models.PressurePause.Severity())
	assert.Less(t, models.PressurePause.Severity(), models.PressureReject.Severity())
	assert.Less(t, models.PressureReject.Severity(), models.PressureEmergency.Severity())
}
