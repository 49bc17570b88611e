package types

// AccessContext holds the state of one access call as seen by the host:
// - the call-site text used to attribute errors
// - warnings raised while the call completed normally
type AccessContext struct {
	Call     string   // e.g. "x[i] <- value"
	Warnings []*Error // recoverable conditions, in the order raised
}

// NewAccessContext creates a context for a call site
func NewAccessContext(call string) *AccessContext {
	return &AccessContext{Call: call}
}

// Warn records a recoverable condition
func (ctx *AccessContext) Warn(w *Error) {
	if ctx == nil {
		return
	}
	ctx.Warnings = append(ctx.Warnings, w.WithCall(ctx.Call))
}

// Fail attributes err to the context's call site
func (ctx *AccessContext) Fail(err *Error) *Error {
	if ctx == nil {
		return err
	}
	return err.WithCall(ctx.Call)
}

// HasWarning reports whether a warning with the given code was raised
func (ctx *AccessContext) HasWarning(code ErrorCode) bool {
	if ctx == nil {
		return false
	}
	for _, w := range ctx.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
