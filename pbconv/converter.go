package pbconv

// Converter converts a native value N to its protobuf representation P and back.
// ToProto cannot fail; FromProto reports malformed or unknown input.
type Converter[N, P any] interface {
	ToProto(in N) P
	FromProto(in P) (N, error)
}

// Funcs adapts a pair of plain functions to Converter.
type Funcs[N, P any] struct {
	To   func(N) P
	From func(P) (N, error)
}

// ToProto implements Converter.
func (f Funcs[N, P]) ToProto(in N) P {
	return f.To(in)
}

// FromProto implements Converter.
func (f Funcs[N, P]) FromProto(in P) (N, error) {
	return f.From(in)
}

type identity[T any] struct{}

func (identity[T]) ToProto(in T) T { return in }

func (identity[T]) FromProto(in T) (T, error) { return in, nil }

// Identity returns the converter used for values that are their own
// protobuf representation.
func Identity[T any]() Converter[T, T] {
	return identity[T]{}
}

// RoundTrip converts v to its protobuf representation and back.
func RoundTrip[N, P any](c Converter[N, P], v N) (N, error) {
	return c.FromProto(c.ToProto(v))
}

// MapSlice converts every element of in with f. A nil slice stays nil.
func MapSlice[N, P any](in []N, f func(N) P) []P {
	if in == nil {
		return nil
	}

	out := make([]P, len(in))
	for i, v := range in {
		out[i] = f(v)
	}

	return out
}

// MapSliceErr converts every element of in with f and stops at the first
// failure. The failing index is attached to the error as a detail.
func MapSliceErr[P, N any](in []P, f func(P) (N, error)) ([]N, error) {
	if in == nil {
		return nil, nil
	}

	out := make([]N, len(in))
	for i, v := range in {
		n, err := f(v)
		if err != nil {
			return nil, withIndex(err, i)
		}

		out[i] = n
	}

	return out, nil
}
