package provisioning

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cstest "github.com/imamik/ccs/internal/testing"
)

func TestUploadDrive(t *testing.T) {
	t.Parallel()
	const id = "7e8f1a3c-7f0a-4c36-9f5b-2b8f5d9b1c11"
	tests := []struct {
		name     string
		response string
		err      error
		want     string
		wantErr  error
	}{
		{name: "uuid", response: id, want: id},
		{name: "trailing newline", response: id + "\n", want: id},
		{name: "html error page", response: "<html>oops</html>", wantErr: ErrUnexpectedUploadResult},
		{name: "empty", response: "", wantErr: ErrUnexpectedUploadResult},
		{name: "transport", err: errors.New("broken pipe")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uploader := new(cstest.MockUploader)
			uploader.On("Upload", mock.Anything, "image-bytes").Return(tt.response, tt.err)
			p := NewProvisioner(cstest.NewCloud().Registry(), WithUploader(uploader))

			got, err := p.UploadDrive(cstest.TestContext(t), strings.NewReader("image-bytes"))
			uploader.AssertExpectations(t)
			switch {
			case tt.err != nil:
				assert.Equal(t, tt.err, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUploadDrive_NoUploader(t *testing.T) {
	t.Parallel()
	p := NewProvisioner(cstest.NewCloud().Registry())
	_, err := p.UploadDrive(cstest.TestContext(t), strings.NewReader("x"))
	assert.Error(t, err)
}
