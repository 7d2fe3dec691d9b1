package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"

	"dm-relay/contract"
	"dm-relay/domain"
	"dm-relay/observability"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker periodically logs process health (CPU, RAM, status)
// together with the relay counters and the current session population.
type HeartbeatWorker struct {
	log      *slog.Logger
	registry contract.IRegistry
	monitor  *observability.RelayMonitor
	interval time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	monitor *observability.RelayMonitor,
	interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		registry: registry,
		monitor:  monitor,
		interval: interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting relay heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			roster := w.registry.Roster()
			online := lo.CountBy(roster, func(e domain.RosterEntry) bool { return e.Online })
			stats := w.monitor.Snapshot()

			w.log.Info("Relay heartbeat",
				"pid", os.Getpid(),
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"sessions", len(roster),
				"online", online,
				"messages_relayed", stats.MessagesRelayed,
				"messages_dropped", stats.MessagesDropped,
				"roster_broadcasts", stats.RosterBroadcasts,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
