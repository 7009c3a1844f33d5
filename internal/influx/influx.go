// Package influx ships detection-pass timing points to InfluxDB. Purely
// diagnostic; detection never depends on it.
package influx

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kcolton/carball/internal/detector"
)

// Manager handles InfluxDB connections and writes.
type Manager struct {
	Client  influxdb2.Client
	Writer  influxdb2_api.WriteAPI
	IsValid bool
	Bucket  string
	Logger  zerolog.Logger
}

// NewManager creates a new InfluxDB manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		IsValid: false,
		Bucket:  viper.GetString("influx.bucket"),
		Logger:  log,
	}
}

// Connect establishes a connection to InfluxDB.
func (m *Manager) Connect() error {
	if !viper.GetBool("influx.enabled") {
		return errors.New("influx.enabled is false")
	}

	m.Client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	// validate client connection health
	running, err := m.Client.Ping(context.Background())
	if err != nil || !running {
		m.IsValid = false
		return fmt.Errorf("influxdb not reachable: %v", err)
	}

	m.Writer = m.Client.WriteAPI(viper.GetString("influx.org"), m.Bucket)
	m.IsValid = true
	m.Logger.Info().Str("bucket", m.Bucket).Msg("Connected to InfluxDB")
	return nil
}

// WritePassTiming records the phase timings of one detection pass.
func (m *Manager) WritePassTiming(replayName string, timing detector.Timing, hits int) {
	if !m.IsValid {
		return
	}
	p := influxdb2.NewPoint(
		"detection_pass",
		map[string]string{"replay": replayName},
		map[string]interface{}{
			"selection_ms":  timing.SelectionMs,
			"pipeline_ms":   timing.PipelineMs,
			"resolution_ms": timing.ResolutionMs,
			"hits":          hits,
		},
		time.Now(),
	)
	m.Writer.WritePoint(p)
}

// Close flushes pending writes and shuts the client down.
func (m *Manager) Close() {
	if m.Writer != nil {
		m.Writer.Flush()
	}
	if m.Client != nil {
		m.Client.Close()
	}
}
