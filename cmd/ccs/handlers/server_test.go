package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ccs/internal/provisioning"
	"github.com/imamik/ccs/internal/resource"
	cstest "github.com/imamik/ccs/internal/testing"
	"github.com/imamik/ccs/internal/ui"
	"github.com/imamik/ccs/internal/units"
)

func TestServerCreate(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())

	err := ServerCreate(context.Background(), env.global, ServerCreateOptions{
		Name: "web", CPUs: 2, CPUSpeed: 2000, Memory: "4G", Password: "pw", CreateDrive: "20G", SMP: "cpu",
	})
	require.NoError(t, err)

	require.Len(t, env.cloud.Servers.Created, 1)
	assert.True(t, env.cloud.Servers.Created[0].CPUsInsteadOfCores)
	require.Len(t, env.cloud.Drives.Created, 1)
	assert.Equal(t, "web-system", env.cloud.Drives.Created[0].Name)

	server := env.cloud.Servers.Items[0]
	assert.Equal(t, "server "+server.UUID+" 'web' status=stopped cpu=2x2.0Ghz memory=4G drives=['web-system']\n", env.out.String())
}

func TestServerCreate_PromptsForPassword(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())
	stdinIsTerminal = func() bool { return true }
	promptPassword = func(context.Context, string, string) (string, error) { return "typed", nil }

	err := ServerCreate(context.Background(), env.global, ServerCreateOptions{Name: "web", CPUs: 1, CPUSpeed: 1000, Memory: "1G"})
	require.NoError(t, err)
	assert.Equal(t, "typed", env.cloud.Servers.Created[0].VNCPassword)
}

func TestServerCreate_NoPasswordWithoutTerminal(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())

	err := ServerCreate(context.Background(), env.global, ServerCreateOptions{Name: "web", CPUs: 1, CPUSpeed: 1000, Memory: "1G"})
	assert.ErrorIs(t, err, ui.ErrNotInteractive)
	assert.Empty(t, env.cloud.Servers.Created)
}

func TestServerCreate_InvalidMedia(t *testing.T) {
	disk := cstest.Disk("data", units.GiB)
	env := newTestEnv(t, cstest.NewCloud().WithDrives(disk))

	err := ServerCreate(context.Background(), env.global, ServerCreateOptions{
		Name: "web", CPUs: 1, CPUSpeed: 1000, Memory: "1G", Password: "pw", BootCDROM: "data",
	})
	assert.ErrorIs(t, err, provisioning.ErrInvalidMedia)
	assert.Empty(t, env.cloud.Servers.Updated)
}

func TestServerCreate_VerboseLogsEvents(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())
	env.global.Verbose = true

	err := ServerCreate(context.Background(), env.global, ServerCreateOptions{
		Name: "web", CPUs: 1, CPUSpeed: 1000, Memory: "1G", Password: "pw",
	})
	require.NoError(t, err)
	assert.Contains(t, env.errOut.String(), `"event"="resource.created"`)
	assert.Contains(t, env.errOut.String(), `"region"="zrh"`)
}

func TestServerToggle(t *testing.T) {
	server := cstest.Server("web")
	tests := []struct {
		action ServerAction
		want   string
	}{
		{action: OpenConsole, want: "open_console"},
		{action: CloseConsole, want: "close_console"},
		{action: OpenDisplay, want: "open_vnc"},
		{action: CloseDisplay, want: "close_vnc"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			env := newTestEnv(t, cstest.NewCloud().WithServers(server))

			err := ServerToggle(context.Background(), env.global, tt.action, "web")
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want + ":" + server.UUID}, env.cloud.Servers.Actions)

			var result resource.ActionResult
			require.NoError(t, json.Unmarshal(env.out.Bytes(), &result))
			assert.Equal(t, tt.want, result.Action)
		})
	}
}

func TestServerToggle_Errors(t *testing.T) {
	env := newTestEnv(t, cstest.NewCloud())

	err := ServerToggle(context.Background(), env.global, OpenConsole, "missing")
	assert.True(t, errors.Is(err, resource.ErrNotFound))

	err = ServerToggle(context.Background(), env.global, ServerAction("reboot"), "missing")
	assert.Error(t, err)
	assert.Empty(t, env.cloud.Servers.Actions)
}
