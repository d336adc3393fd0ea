package handlers

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/ccs/internal/config"
	"github.com/imamik/ccs/internal/resource"
	cstest "github.com/imamik/ccs/internal/testing"
)

type fakeBackend struct {
	cloud    *cstest.Cloud
	uploader *cstest.MockUploader
}

func (b *fakeBackend) Services() resource.Services { return b.cloud.Services() }

func (b *fakeBackend) Upload(ctx context.Context, body io.Reader) (string, error) {
	return b.uploader.Upload(ctx, body)
}

// testEnv replaces the handler factories with in-memory fakes.
type testEnv struct {
	cloud    *cstest.Cloud
	uploader *cstest.MockUploader
	global   *GlobalOptions
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	cfgPath  string
}

func newTestEnv(t *testing.T, cloud *cstest.Cloud) *testEnv {
	t.Helper()
	env := &testEnv{
		cloud:    cloud,
		uploader: new(cstest.MockUploader),
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
	}
	env.global = &GlobalOptions{Region: "zrh", Out: env.out, Err: env.errOut}

	origLoad := loadConfig
	origBackend := newBackend
	origStdin := stdinIsTerminal
	origStdout := stdoutIsTerminal
	origPrompt := promptPassword
	t.Cleanup(func() {
		loadConfig = origLoad
		newBackend = origBackend
		stdinIsTerminal = origStdin
		stdoutIsTerminal = origStdout
		promptPassword = origPrompt
	})

	loadConfig = func(path string, o config.Overrides) (*config.Config, error) {
		env.cfgPath = path
		return &config.Config{Region: o.Region, Username: "user@example.com", Password: "secret"}, nil
	}
	newBackend = func(_ *config.Config, _ logr.Logger, _ prometheus.Registerer) Backend {
		return &fakeBackend{cloud: env.cloud, uploader: env.uploader}
	}
	stdinIsTerminal = func() bool { return false }
	stdoutIsTerminal = func() bool { return false }
	promptPassword = func(context.Context, string, string) (string, error) {
		t.Fatal("unexpected password prompt")
		return "", nil
	}
	return env
}
