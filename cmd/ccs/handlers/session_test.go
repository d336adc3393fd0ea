package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ccs/internal/config"
	cstest "github.com/imamik/ccs/internal/testing"
)

func TestOpenSession_PassesOverrides(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())
	env.global.ConfigPath = "/etc/ccs.yaml"

	var got *config.Config
	newBackend = func(cfg *config.Config, _ logr.Logger, _ prometheus.Registerer) Backend {
		got = cfg
		return &fakeBackend{cloud: env.cloud, uploader: env.uploader}
	}

	err := List(context.Background(), env.global, ListOptions{Kind: "servers"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/ccs.yaml", env.cfgPath)
	require.NotNil(t, got)
	assert.Equal(t, "zrh", got.Region)
}

func TestMetricsTextfile(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())
	path := filepath.Join(t.TempDir(), "ccs.prom")
	env.global.MetricsTextfile = path

	newBackend = func(_ *config.Config, _ logr.Logger, reg prometheus.Registerer) Backend {
		requests := prometheus.NewCounter(prometheus.CounterOpts{Name: "ccs_api_requests_total", Help: "test"})
		reg.MustRegister(requests)
		requests.Inc()
		return &fakeBackend{cloud: env.cloud, uploader: env.uploader}
	}

	err := List(context.Background(), env.global, ListOptions{Kind: "vlans"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ccs_api_requests_total 1")
}

func TestMetricsTextfile_WriteError(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())
	env.global.MetricsTextfile = filepath.Join(t.TempDir(), "missing-dir", "ccs.prom")

	err := List(context.Background(), env.global, ListOptions{Kind: "vlans"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics")
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logr.Discard(), newLogger(&GlobalOptions{}))

	env := newTestEnv(t, cstest.NewCloud())
	log := newLogger(&GlobalOptions{Verbose: true, Err: env.errOut})
	log.WithName("api").V(1).Info("hello", "k", "v")
	assert.Equal(t, "api: \"level\"=1 \"msg\"=\"hello\" \"k\"=\"v\"\n", env.errOut.String())
}
