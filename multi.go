package joinery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Multi joins many element sequences ("rows") in a single pass, each row
// joined with the same separator. Rows are rendered concurrently, and results
// preserve Add order.
//
// The primary purpose of Multi is batch rendering with identifiable failures:
// when a custom [Renderer] can fail, every failing row is reported, decorated
// by the input namer if one was provided, rather than stopping at the first.
type Multi[T any] struct {
	mut  sync.RWMutex
	rows [][]T

	// render, if non-nil, replaces the default fmt-based renderer.
	render Renderer[T]

	// namer, if non-nil, gives a name to a row for error decoration.
	namer func(row []T) string
}

// MultiWithNamer creates a new Multi that decorates errors using the provided
// namer func, which can derive a meaningful identifier string from a row.
func MultiWithNamer[T any](namer func(row []T) string) *Multi[T] {
	return &Multi[T]{
		namer: namer,
	}
}

// Add appends rows to the Multi. In Join, rows are rendered in the order they
// were added.
func (m *Multi[T]) Add(rows ...[]T) {
	m.mut.Lock()
	m.rows = append(m.rows, rows...)
	m.mut.Unlock()
}

// SetRenderer replaces the default fmt-based renderer for all subsequent
// Join calls.
func (m *Multi[T]) SetRenderer(r Renderer[T]) {
	m.mut.Lock()
	m.render = r
	m.mut.Unlock()
}

// Len reports the number of rows added so far.
func (m *Multi[T]) Len() int {
	m.mut.RLock()
	defer m.mut.RUnlock()
	return len(m.rows)
}

func (m *Multi[T]) wrapinerr(row []T, err error) error {
	if err == nil {
		return nil
	}
	if m.namer == nil {
		return err
	}
	return fmt.Errorf("%w for input %q", err, m.namer(row))
}

// Join renders every added row to its own string, with sep interleaved
// between the row's elements. The returned slice is ordered by row index,
// independent of render scheduling.
//
// Renderer failures are aggregated across rows; any failure results in a nil
// slice and an error covering every failed row.
func (m *Multi[T]) Join(ctx context.Context, sep Separator) ([]string, error) {
	m.mut.RLock()
	defer m.mut.RUnlock()

	render := m.render
	if render == nil {
		render = RenderFprint[T]
	}

	out := make([]string, len(m.rows))
	errs := make([]error, len(m.rows))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)
	for i, row := range m.rows {
		i, row := i, row
		g.Go(func() error {
			var sb strings.Builder
			err := WriteFunc(&sb, sliceSeq(row), sep, render)
			if err != nil {
				errs[i] = m.wrapinerr(row, err)
				return nil
			}
			out[i] = sb.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := new(multierror.Error)
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result.ErrorOrNil() != nil {
		return nil, multierror.Flatten(result)
	}

	return out, nil
}
