package pbconv

import (
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	// Timestamp converts time.Time to google.protobuf.Timestamp.
	// A nil message converts to the zero time. The message carries no
	// location: FromProto returns UTC, so a round trip is Equal to the
	// input but not == unless the input was in UTC. The monotonic clock
	// reading is dropped as well.
	Timestamp Converter[time.Time, *timestamppb.Timestamp] = timestampConverter{}
	// Duration converts time.Duration to google.protobuf.Duration.
	// A nil message converts to zero.
	Duration Converter[time.Duration, *durationpb.Duration] = durationConverter{}
)

type timestampConverter struct{}

func (timestampConverter) ToProto(in time.Time) *timestamppb.Timestamp {
	if in.IsZero() {
		return nil
	}

	return timestamppb.New(in)
}

func (timestampConverter) FromProto(in *timestamppb.Timestamp) (time.Time, error) {
	if in == nil {
		return time.Time{}, nil
	}

	if err := in.CheckValid(); err != nil {
		return time.Time{}, err
	}

	return in.AsTime(), nil
}

type durationConverter struct{}

func (durationConverter) ToProto(in time.Duration) *durationpb.Duration {
	return durationpb.New(in)
}

func (durationConverter) FromProto(in *durationpb.Duration) (time.Duration, error) {
	if in == nil {
		return 0, nil
	}

	if err := in.CheckValid(); err != nil {
		return 0, err
	}

	return in.AsDuration(), nil
}
