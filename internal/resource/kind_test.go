package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"server", KindServer},
		{"servers", KindServer},
		{"Drive", KindDrive},
		{"drives", KindDrive},
		{"vlan", KindVLAN},
		{"VLANs", KindVLAN},
		{"ip", KindIP},
		{"ips", KindIP},
		{"subscription", KindSubscription},
		{"subscriptions", KindSubscription},
		{"capability", KindCapability},
		{"capabilities", KindCapability},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, input := range []string{"", "bucket", "serverss", "all"} {
		_, err := ParseKind(input)
		assert.ErrorIs(t, err, ErrUnknownResourceKind, "input %q", input)
	}
}

func TestKind_Plural(t *testing.T) {
	assert.Equal(t, "servers", KindServer.Plural())
	assert.Equal(t, "ips", KindIP.Plural())
	assert.Equal(t, "capabilities", KindCapability.Plural())
}

func TestKinds_IsClosedAndOrdered(t *testing.T) {
	all := Kinds()
	assert.Equal(t, []Kind{KindServer, KindDrive, KindVLAN, KindIP, KindSubscription, KindCapability}, all)
	for _, k := range all {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, Kind("bucket").Valid())

	all[0] = "mutated"
	assert.Equal(t, KindServer, Kinds()[0], "Kinds must return a copy")
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Kind: KindDrive, Query: "missing"})
	assert.EqualError(t, err, "unknown drive missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(ErrUnknownResourceKind))
}
