// Package access implements indexed read and write of vectors, matrices,
// arrays and lists: x[i], x[[i]], x[i] <- v and x[[i]] <- v.
//
// Every call normalizes its positions, resolves them per dimension, plans
// the flat indices they address and only then touches elements. Writes
// validate everything before the first element is stored, and a vector
// shared with another owner is copied once before it is written.
package access

import (
	"errors"

	"rvec/position"
	"rvec/trace"
	"rvec/types"
)

// ExtractOptions selects the flavour of a read
type ExtractOptions struct {
	Subscript bool // [[ ]] instead of [ ]
	Exact     bool // [[ ]] only matches names exactly
	Drop      bool // drop dimensions selecting a single position
}

// SubsetOptions are the defaults of x[...]
func SubsetOptions() ExtractOptions {
	return ExtractOptions{Exact: true, Drop: true}
}

// SubscriptOptions are the defaults of x[[...]]
func SubscriptOptions() ExtractOptions {
	return ExtractOptions{Subscript: true, Exact: true, Drop: true}
}

func (o ExtractOptions) mode() position.Mode {
	return position.Mode{Subscript: o.Subscript}
}

// ReplaceOptions selects the flavour of a write
type ReplaceOptions struct {
	Subscript bool // [[ ]] <- instead of [ ] <-
}

func (o ReplaceOptions) mode() position.Mode {
	return position.Mode{Subscript: o.Subscript, Replace: true}
}

// Extract reads the elements of x selected by positions, one position per
// dimension or a single position over the whole vector. x is never modified.
func Extract(ctx *types.AccessContext, x types.Value, positions []types.Value, opts ExtractOptions) (types.Value, error) {
	op := opts.mode().String()
	trace.Access(op, x, positions)

	result, err := extract(x, positions, opts)
	if err != nil {
		err = attribute(ctx, err)
		trace.Failure(op, err)
		return nil, err
	}
	trace.Result(op, result)
	return result, nil
}

// Replace writes value into the elements of x selected by positions and
// returns the updated value. x is updated in place only when it is not
// shared; otherwise the result is a modified copy. An unshared x that had to
// be grown or compacted is consumed: it no longer owns its list elements.
func Replace(ctx *types.AccessContext, x types.Value, positions []types.Value, value types.Value, opts ReplaceOptions) (types.Value, error) {
	op := opts.mode().String()
	trace.Access(op, x, positions)

	w := &writeCall{ctx: ctx, op: op, opts: opts}
	result, err := w.replace(x, positions, value)
	if err != nil {
		err = attribute(ctx, err)
		trace.Failure(op, err)
		return nil, err
	}
	trace.Result(op, result)
	return result, nil
}

// attribute names the call site on access errors
func attribute(ctx *types.AccessContext, err error) error {
	var e *types.Error
	if errors.As(err, &e) {
		return ctx.Fail(e)
	}
	return err
}
