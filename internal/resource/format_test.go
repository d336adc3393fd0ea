package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ccs/internal/resource"
	cstest "github.com/imamik/ccs/internal/testing"
	"github.com/imamik/ccs/internal/units"
)

func TestFormatter_Server(t *testing.T) {
	sys := cstest.Disk("web-system", 10*units.GiB)
	iso := cstest.CDROM("", 700*units.MiB)
	web := cstest.Server("web-1")
	web.Mem = 1536 * units.MiB
	web.CPU = 5000
	web.SMP = 2
	web.Drives = []resource.DriveAttachment{
		{BootOrder: 1, DevChannel: "0:0", Device: "virtio", Drive: resource.Ref{UUID: sys.UUID}},
		{BootOrder: 2, DevChannel: "0:0", Device: "ide", Drive: resource.Ref{UUID: iso.UUID}},
	}
	reg := cstest.NewCloud().WithServers(web).WithDrives(sys, iso).Registry()

	line, err := resource.NewFormatter(reg).Format(cstest.TestContext(t), web)
	require.NoError(t, err)
	assert.Equal(t,
		"server "+web.UUID+" 'web-1' status=running cpu=2x2.5Ghz memory=1.5G drives=['web-system', '<unnamed_drive>']",
		line)
}

func TestFormatter_ServerWholeGHzAndNoDrives(t *testing.T) {
	web := cstest.Server("")
	reg := cstest.NewCloud().WithServers(web).Registry()

	line, err := resource.NewFormatter(reg).Format(cstest.TestContext(t), web)
	require.NoError(t, err)
	assert.Equal(t, "server "+web.UUID+" '<unnamed_server>' status=running cpu=2x2.0Ghz memory=2G drives=[]", line)
}

func TestFormatter_ServerZeroSMPDoesNotPanic(t *testing.T) {
	web := cstest.Server("odd")
	web.SMP = 0
	reg := cstest.NewCloud().WithServers(web).Registry()

	line, err := resource.NewFormatter(reg).Format(cstest.TestContext(t), web)
	require.NoError(t, err)
	assert.Contains(t, line, "cpu=0x0.0Ghz")
}

func TestFormatter_Drive(t *testing.T) {
	web := cstest.Server("web-1")
	db := cstest.Server("db-1")
	unmounted := cstest.Disk("spare", 1610612736)
	shared := cstest.MountedOn(cstest.Disk("shared", units.TiB), web, db)
	shared.AllowMultimount = true
	reg := cstest.NewCloud().WithServers(web, db).WithDrives(unmounted, shared).Registry()
	f := resource.NewFormatter(reg)
	ctx := cstest.TestContext(t)

	line, err := f.Format(ctx, unmounted)
	require.NoError(t, err)
	assert.Equal(t, "drive "+unmounted.UUID+" 'spare' size=1.5G media=disk type=dssd <unmounted>", line)

	line, err = f.Format(ctx, shared)
	require.NoError(t, err)
	assert.Equal(t, "drive "+shared.UUID+" 'shared' size=1T media=disk type=dssd mounted=['web-1', 'db-1']", line)
}

func TestFormatter_VLANAndIP(t *testing.T) {
	web := cstest.Server("web-1")
	vlan := resource.VLAN{UUID: "vlan-1", Meta: resource.Meta{"name": "private", "description": "backend net"}}
	bare := resource.VLAN{UUID: "vlan-2"}
	used := resource.IP{UUID: "185.12.5.1", Server: &resource.Ref{UUID: web.UUID}, Meta: resource.Meta{"description": "frontend"}}
	free := resource.IP{UUID: "185.12.5.2", Meta: resource.Meta{"name": "spare-ip"}}
	reg := cstest.NewCloud().WithServers(web).WithVLANs(vlan, bare).WithIPs(used, free).Registry()
	f := resource.NewFormatter(reg)
	ctx := cstest.TestContext(t)

	tests := []struct {
		rec  resource.Record
		want string
	}{
		{vlan, "vlan vlan-1 'private' 'backend net'"},
		{bare, "vlan vlan-2 '<unnamed_vlan>' ''"},
		{used, "ip 185.12.5.1 '<unnamed_ip>' [web-1] 'frontend'"},
		{free, "ip 185.12.5.2 'spare-ip' [free] ''"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			line, err := f.Format(ctx, tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestFormatter_SubscriptionAndUnknown(t *testing.T) {
	cloud := cstest.NewCloud()
	f := resource.NewFormatter(cloud.Registry())
	ctx := cstest.TestContext(t)

	line, err := f.Format(ctx, resource.Subscription{UUID: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, "subscription sub-1 '<unnamed_subscription>' ", line)
	assert.Equal(t, 0, cloud.Subscriptions.ListDetailCalls, "subscriptions are never looked up")

	line, err = f.Format(ctx, resource.Capability{"uuid": "cap-1"})
	require.NoError(t, err)
	assert.Equal(t, "unknown cap-1 '' ", line)
}

func TestFormatter_DanglingReference(t *testing.T) {
	web := cstest.Server("web-1")
	web.Drives = []resource.DriveAttachment{{BootOrder: 1, Drive: resource.Ref{UUID: "gone"}}}
	reg := cstest.NewCloud().WithServers(web).Registry()

	_, err := resource.NewFormatter(reg).Format(cstest.TestContext(t), web)
	var nf *resource.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, resource.KindDrive, nf.Kind)
	assert.Equal(t, "gone", nf.Query)
}

func TestFormatter_FormatAll(t *testing.T) {
	a, b := cstest.Server("a"), cstest.Server("b")
	reg := cstest.NewCloud().WithServers(a, b).Registry()
	ctx := cstest.TestContext(t)

	recs, err := reg.List(ctx, resource.KindServer, true)
	require.NoError(t, err)
	lines, err := resource.NewFormatter(reg).FormatAll(ctx, recs)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "'a'")
	assert.Contains(t, lines[1], "'b'")
}

func TestFormatter_NameOfUnknownKind(t *testing.T) {
	f := resource.NewFormatter(cstest.NewCloud().Registry())
	_, err := f.NameOf(cstest.TestContext(t), resource.Kind("bucket"), "x")
	assert.ErrorIs(t, err, resource.ErrUnknownResourceKind)
}
