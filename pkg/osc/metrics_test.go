package osc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.recordRequest(PathInfo, OutcomeOK, time.Millisecond)
	m.recordStatusPoll("camera.takePicture")
	m.recordPreviewFrame()

	m, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestClientRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	status, _ := statusScript(inProgressPicture, donePicture)
	cam := newTestCamera()
	cam.handle(PathExecute, reply(200, inProgressPicture))
	cam.handle(PathStatus, status)
	cam.handle(PathInfo, reply(500, `nope`))

	c := newTestClient(t, cam)
	c.metrics = metrics

	_, err = Run(context.Background(), c, testTakePicture, Unit{})
	require.NoError(t, err)
	_, _ = Info[testInfo](context.Background(), c)

	assert.Equal(t, 1.0, counterValue(t, metrics.requests.WithLabelValues(PathExecute, OutcomeOK)))
	assert.Equal(t, 2.0, counterValue(t, metrics.requests.WithLabelValues(PathStatus, OutcomeOK)))
	assert.Equal(t, 1.0, counterValue(t, metrics.requests.WithLabelValues(PathInfo, OutcomeHTTPError)))
	assert.Equal(t, 2.0, counterValue(t, metrics.statusPolls.WithLabelValues("camera.takePicture")))
}

func TestPreviewFramesMetric(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	cam := newTestCamera()
	cam.handle(PathExecute, func(w http.ResponseWriter, _ *http.Request) {
		writePreview(w, "a", "b", "c")
	})
	c := newTestClient(t, cam)
	c.metrics = metrics

	d, err := c.LivePreview(context.Background())
	require.NoError(t, err)
	defer d.Close()
	for {
		_, err := d.NextFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, counterValue(t, metrics.previewFrames))
}

func counterValue(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, m.Write(&pb))
	return pb.GetCounter().GetValue()
}
