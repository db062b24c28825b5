package usecase

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"inventory-management/internal/item"
)

func toConverters(in []item.ConverterInput) []item.Converter {
	out := make([]item.Converter, 0, len(in))
	for _, c := range in {
		var multiply float64
		if c.Multiply != nil {
			multiply = *c.Multiply
		}
		out = append(out, item.Converter{Name: c.Name, Multiply: multiply})
	}
	return out
}

func toConverterInputs(in []item.Converter) []item.ConverterInput {
	out := make([]item.ConverterInput, 0, len(in))
	for _, c := range in {
		multiply := c.Multiply
		out = append(out, item.ConverterInput{Name: c.Name, Multiply: &multiply})
	}
	return out
}

// coalesce returns the patched value when one was sent, else the existing one.
func coalesce[T any](patch *T, existing T) T {
	if patch != nil {
		return *patch
	}
	return existing
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
