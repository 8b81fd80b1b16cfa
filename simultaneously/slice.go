package simultaneously

import "context"

// MapSlice transforms every value in parallel. See MapSliceCtx.
func MapSlice[Input, Output any](
	maxConcurrent int,
	values []Input,
	transform func(ctx context.Context, value Input) (Output, error),
) ([]Output, error) {
	return MapSliceCtx(context.Background(), maxConcurrent, values, transform)
}

// MapSliceCtx transforms every value in parallel, with the same concurrency,
// cancellation and panic semantics as DoCtx. Order is preserved: outputs[i]
// corresponds to values[i]. On error no outputs are returned.
func MapSliceCtx[Input, Output any](
	ctx context.Context,
	maxConcurrent int,
	values []Input,
	transform func(ctx context.Context, value Input) (Output, error),
) ([]Output, error) {
	if len(values) == 0 {
		return nil, nil
	}

	outputs := make([]Output, len(values))
	callbacks := make([]func(context.Context) error, len(values))

	for idx, value := range values {
		callbacks[idx] = func(ctx context.Context) error {
			out, err := transform(ctx, value)
			if err != nil {
				return err
			}

			outputs[idx] = out

			return nil
		}
	}

	if err := DoCtx(ctx, maxConcurrent, callbacks...); err != nil {
		return nil, err
	}

	return outputs, nil
}
