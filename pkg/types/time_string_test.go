package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		want    int
		wantErr bool
	}{
		{name: "HH:MM", value: "09:30", want: 570},
		{name: "HH:MM:SS", value: "13:05:00", want: 785},
		{name: "single digit hour", value: "9:00", want: 540},
		{name: "midnight", value: "00:00", want: 0},
		{name: "end of day", value: "24:00", want: 1440},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
		{name: "minutes overflow", value: "10:60", wantErr: true},
		{name: "past end of day", value: "24:30", wantErr: true},
		{name: "utc offset ignored", value: "09:00:00+03", want: 540},
		{name: "fraction ignored", value: "09:00:00.500", want: 540},
		{name: "extra parts ignored", value: "10:00:00:00", want: 600},
		{name: "single digit minutes", value: "10:5", wantErr: true},
		{name: "three digit hour", value: "100:00", wantErr: true},
		{name: "no minutes", value: "10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Minutes()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Hour(t *testing.T) {
	tests := []struct {
		value   TimeString
		want    int
		wantErr bool
	}{
		{value: "09:30:00", want: 9},
		{value: "9:00", want: 9},
		{value: "12:75", want: 12},
		{value: "17:00:00+03", want: 17},
		{value: "", wantErr: true},
		{value: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			got, err := tt.value.Hour()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_HHMM(t *testing.T) {
	assert.Equal(t, "09:00", TimeString("09:00:00").HHMM())
	assert.Equal(t, "09:00", TimeString("09:00").HHMM())
	assert.Equal(t, "", TimeString("").HHMM())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
