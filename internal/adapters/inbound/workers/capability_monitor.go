package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

// CapabilityMonitor probes the capabilities periodically and logs every availability change,
// such as a model download finishing.
type CapabilityMonitor struct {
	ListCapabilities    usecases.ListCapabilities `resolve:""`
	Logger              *log.Logger               `resolve:""`
	Interval            time.Duration             `config:"CAPABILITY_MONITOR_INTERVAL" default:"30s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic probing.
func (m CapabilityMonitor) Run(ctx context.Context) error {
	m.Logger.Println("CapabilityMonitor: running...")
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	known := map[string]domain.AvailabilityState{}
	for {
		select {
		case <-ticker.C:
			if err := m.check(ctx, known); err != nil {
				m.Logger.Printf("CapabilityMonitor: error probing capabilities: %v", err)
			}
			if m.workerExecutionChan != nil {
				select {
				case m.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			m.Logger.Println("CapabilityMonitor: stopping...")
			return nil
		}
	}
}

func (m CapabilityMonitor) check(ctx context.Context, known map[string]domain.AvailabilityState) error {
	report, err := m.ListCapabilities.Query(ctx)
	if err != nil {
		return err
	}

	for _, c := range report.Capabilities {
		key := fmt.Sprintf("%s/%s", c.Name, c.Tier)
		if prev, ok := known[key]; ok && prev != c.Status.State {
			m.Logger.Printf("CapabilityMonitor: %s changed from %s to %s", key, prev, c.Status)
		}
		known[key] = c.Status.State
	}
	return nil
}
