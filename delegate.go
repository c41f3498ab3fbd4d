package inkstroke

import "weak"

// Delegate is informed about lifecycle events of a stroke.
type Delegate interface {
	// StrokeWasCancelled is called synchronously from within Cancel, at
	// most once per stroke.
	StrokeWasCancelled(s *Stroke)
}

// SetDelegate attaches d to s without keeping d alive: the stroke holds a
// weak pointer only. Once d has been garbage collected, notifications are
// silently dropped. A nil d removes the delegate.
func SetDelegate[T any, D interface {
	*T
	Delegate
}](s *Stroke, d D) {
	ptr := (*T)(d)
	if ptr == nil {
		s.ClearDelegate()
		return
	}
	wp := weak.Make(ptr)
	s.delegate = func() Delegate {
		if p := wp.Value(); p != nil {
			return D(p)
		}
		return nil
	}
}

// ClearDelegate detaches the delegate, if any.
func (s *Stroke) ClearDelegate() {
	s.delegate = nil
}

// liveDelegate returns the delegate if one is set and still alive.
func (s *Stroke) liveDelegate() Delegate {
	if s.delegate == nil {
		return nil
	}
	return s.delegate()
}
