package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// DefaultSpec probes every 15 seconds.
const DefaultSpec = "*/15 * * * * *"

// probeTimeout bounds a single probe run.
const probeTimeout = 10 * time.Second

// Prober is the part of rpc.Client the monitor uses.
type Prober interface {
	Status(ctx context.Context) (*rpc.NodeStatus, error)
	CurrentEpoch(ctx context.Context) (rpc.Epoch, error)
}

// Status is the outcome of the most recent chain probe.
type Status struct {
	Healthy      bool      `json:"healthy"`
	Network      string    `json:"network,omitempty"`
	LatestHeight string    `json:"latest_height,omitempty"`
	CatchingUp   bool      `json:"catching_up"`
	Epoch        uint64    `json:"epoch"`
	LatencyMs    int64     `json:"latency_ms"`
	CheckedAt    time.Time `json:"checked_at"`
	Error        string    `json:"error,omitempty"`
}

// Monitor periodically probes the chain and keeps the last result.
type Monitor struct {
	client Prober
	logger *zap.Logger
	spec   string

	// Cron is the scheduler that triggers probes according to spec.
	Cron *cron.Cron
	last atomic.Pointer[Status]
}

// New returns a monitor; an empty spec falls back to DefaultSpec.
func New(client Prober, logger *zap.Logger, spec string) *Monitor {
	if spec == "" {
		spec = DefaultSpec
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{client: client, logger: logger, spec: spec}
}

// Setup registers the probe on a fresh scheduler. Probe runs derive from ctx.
func (m *Monitor) Setup(ctx context.Context) error {
	// Seconds field, optional
	m.Cron = cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cronLogger{m.logger.Sugar()})))

	_, err := m.Cron.AddFunc(m.spec, func() {
		rctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		m.Probe(rctx)
	})
	return err
}

// Start runs one probe immediately and then starts the scheduler.
func (m *Monitor) Start(ctx context.Context) {
	rctx, cancel := context.WithTimeout(ctx, probeTimeout)
	m.Probe(rctx)
	cancel()

	if m.Cron != nil {
		m.Cron.Start()
		m.logger.Info("Health monitor started", zap.String("cronSpec", m.spec))
	}
}

// Stop stops the scheduler and waits for a running probe to finish.
func (m *Monitor) Stop() {
	if m.Cron != nil {
		<-m.Cron.Stop().Done()
	}
}

// Probe queries node status and epoch, records the result and returns it.
func (m *Monitor) Probe(ctx context.Context) Status {
	start := time.Now()
	st := Status{CheckedAt: start.UTC()}

	node, err := m.client.Status(ctx)
	if err == nil {
		st.Network = node.NodeInfo.Network
		st.LatestHeight = node.SyncInfo.LatestBlockHeight
		st.CatchingUp = node.SyncInfo.CatchingUp
		var epoch rpc.Epoch
		epoch, err = m.client.CurrentEpoch(ctx)
		st.Epoch = uint64(epoch)
	}
	st.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		st.Error = err.Error()
		m.logger.Warn("Chain probe failed", zap.Error(err), zap.Int64("latencyMs", st.LatencyMs))
	} else {
		st.Healthy = true
		m.logger.Debug("Chain probe ok",
			zap.String("height", st.LatestHeight),
			zap.Uint64("epoch", st.Epoch),
			zap.Int64("latencyMs", st.LatencyMs))
	}

	m.last.Store(&st)
	return st
}

// Last returns the most recent probe result, if any probe has run.
func (m *Monitor) Last() (Status, bool) {
	st := m.last.Load()
	if st == nil {
		return Status{}, false
	}
	return *st, true
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
