package resolution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Presets(t *testing.T) {
	tests := []struct {
		name string
		want Dimensions
	}{
		{"1080p", Dimensions{1920, 1080}},
		{"720p", Dimensions{1280, 720}},
		{"480p", Dimensions{854, 480}},
		{"360p", Dimensions{640, 360}},
		{"240p", Dimensions{426, 240}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("9999p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownResolution))

	var ue *UnknownError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "9999p", ue.Name)
	for _, n := range Names() {
		assert.Contains(t, err.Error(), n)
	}
}

func TestNames_TableOrder(t *testing.T) {
	assert.Equal(t, []string{"1080p", "720p", "480p", "360p", "240p"}, Names())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantLabel string
		wantDims  Dimensions
		wantErr   error
	}{
		{"preset", "720p", "720p", Dimensions{1280, 720}, nil},
		{"preset with spaces", " 480p ", "480p", Dimensions{854, 480}, nil},
		{"explicit", "1000x500", "1000x500", Dimensions{1000, 500}, nil},
		{"explicit upper X", "640X360", "640x360", Dimensions{640, 360}, nil},
		{"zero width", "0x480", "", Dimensions{}, ErrInvalidDimensions},
		{"negative height", "640x-1", "", Dimensions{}, ErrInvalidDimensions},
		{"unknown name", "4k", "", Dimensions{}, ErrUnknownResolution},
		{"garbage dims", "axb", "", Dimensions{}, ErrUnknownResolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Parse(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, target.Label())
			dims, err := target.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDims, dims)
		})
	}
}

func TestTarget_ResolveExplicitInvalid(t *testing.T) {
	_, err := Explicit(-1, 720).Resolve()
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestTarget_ResolveNamedUnknown(t *testing.T) {
	_, err := Named("9999p").Resolve()
	assert.ErrorIs(t, err, ErrUnknownResolution)
}
