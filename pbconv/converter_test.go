package pbconv

import (
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var itoa = Funcs[int, string]{
	To:   strconv.Itoa,
	From: strconv.Atoi,
}

func TestFuncs_RoundTrip(t *testing.T) {
	got, err := RoundTrip[int, string](itoa, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = itoa.FromProto("forty-two")
	assert.Error(t, err)
}

func TestIdentity(t *testing.T) {
	c := Identity[string]()

	assert.Equal(t, "x", c.ToProto("x"))

	got, err := c.FromProto("y")
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
}

func TestMapSliceErr(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []int
		wantErr bool
	}{
		{name: "nil", in: nil, want: nil},
		{name: "all valid", in: []string{"1", "2"}, want: []int{1, 2}},
		{name: "stops at first failure", in: []string{"1", "x", "y"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceErr(tt.in, strconv.Atoi)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Contains(t, errors.FlattenDetails(err), "index 1")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 500, time.UTC)

	got, err := RoundTrip(Timestamp, ts)
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))

	assert.Nil(t, Timestamp.ToProto(time.Time{}))

	zero, err := Timestamp.FromProto(nil)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = Timestamp.FromProto(&timestamppb.Timestamp{Seconds: 1, Nanos: -1})
	assert.Error(t, err)
}

func TestTimestamp_ReturnsUTC(t *testing.T) {
	local := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

	got, err := RoundTrip(Timestamp, local)
	require.NoError(t, err)
	assert.True(t, local.Equal(got))
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, local.UTC(), got)
}

func TestDuration(t *testing.T) {
	got, err := RoundTrip(Duration, 1500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, got)

	zero, err := Duration.FromProto(nil)
	require.NoError(t, err)
	assert.Zero(t, zero)

	_, err = Duration.FromProto(&durationpb.Duration{Seconds: 1, Nanos: -1})
	assert.Error(t, err)
}
