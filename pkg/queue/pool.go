package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/services"
)

// SupervisorPool runs the queue workers plus one supervision loop that does
// the periodic bookkeeping: unread reconciliation and auto-trigger
// scheduling, session staleness reconciliation, and fallback-run
// reconciliation.
type SupervisorPool struct {
	instanceID  string
	workspaceID string
	cfg         *config.SupervisorConfig

	triggers   *services.TriggerService
	registry   *services.RegistryService
	scheduler  *UnreadScheduler
	reconciler *FallbackReconciler
	processor  *Processor

	leaseTimeout time.Duration

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu           sync.RWMutex
	started      bool
	lastSchedule time.Time
}

// NewSupervisorPool creates the pool.
func NewSupervisorPool(instanceID, workspaceID string, cfg *config.SupervisorConfig, leaseTimeout time.Duration, triggers *services.TriggerService, registry *services.RegistryService, scheduler *UnreadScheduler, reconciler *FallbackReconciler, processor *Processor) *SupervisorPool {
	if cfg == nil {
		cfg = config.DefaultSupervisorConfig()
	}
	return &SupervisorPool{
		instanceID:   instanceID,
		workspaceID:  workspaceID,
		cfg:          cfg,
		triggers:     triggers,
		registry:     registry,
		scheduler:    scheduler,
		reconciler:   reconciler,
		processor:    processor,
		leaseTimeout: leaseTimeout,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
	}
}

// Start reclaims leases left over from a previous run, then spawns the
// workers and the supervision loop. Safe to call multiple times; subsequent
// calls are no-ops.
func (p *SupervisorPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Supervisor pool already started, ignoring duplicate Start call", "instance_id", p.instanceID)
		return nil
	}
	p.started = true

	slog.Info("Starting supervisor pool",
		"instance_id", p.instanceID,
		"workspace_id", p.workspaceID,
		"worker_count", p.cfg.WorkerCount)

	if n, err := p.triggers.ReclaimStaleLeases(ctx, p.workspaceID, p.leaseTimeout); err != nil {
		slog.Error("Startup lease reclaim failed", "error", err)
	} else if n > 0 {
		slog.Info("Reclaimed leases from a previous run", "count", n)
	}

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.instanceID, i)
		worker := NewWorker(workerID, p.cfg, p.processor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runSupervision(ctx)
	}()

	slog.Info("Supervisor pool started")
	return nil
}

// Stop signals all workers and the supervision loop to stop and waits for
// them. Workers finish their current tick before exiting.
func (p *SupervisorPool) Stop() {
	slog.Info("Stopping supervisor pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Supervisor pool stopped gracefully")
}

// runSupervision is the periodic bookkeeping loop.
func (p *SupervisorPool) runSupervision(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.superviseOnce(ctx)
		}
	}
}

func (p *SupervisorPool) superviseOnce(ctx context.Context) {
	if _, err := p.scheduler.Tick(ctx); err != nil {
		slog.Error("Unread scheduling pass failed", "error", err)
	}
	p.mu.Lock()
	p.lastSchedule = time.Now()
	p.mu.Unlock()

	if _, transitioned, err := p.registry.ReconcileOffline(ctx, p.workspaceID); err != nil {
		slog.Error("Session reconciliation failed", "error", err)
	} else if transitioned > 0 {
		metrics.SessionsMarkedOffline.Add(float64(transitioned))
	}

	if err := p.reconciler.Tick(ctx); err != nil {
		slog.Error("Fallback reconciliation failed", "error", err)
	}
}

// Health returns the current health status of the pool.
func (p *SupervisorPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.triggers.PendingCount(ctx, p.workspaceID)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"instance_id", p.instanceID,
			"error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	p.mu.RLock()
	lastSchedule := p.lastSchedule
	p.mu.RUnlock()

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		InstanceID:    p.instanceID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastSchedule:  lastSchedule,
	}
}
