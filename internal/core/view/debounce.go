package view

import "time"

// Debounce emits the latest value from in only after delay of quiescence;
// a newer value preempts a pending emission. When in closes, any pending
// value is flushed and out closes. Used to throttle search-triggered
// refilters.
func Debounce[T any](in <-chan T, delay time.Duration) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		var (
			timer   *time.Timer
			timerC  <-chan time.Time
			pending T
			has     bool
		)
		for {
			select {
			case v, ok := <-in:
				if !ok {
					if has {
						out <- pending
					}
					return
				}
				pending, has = v, true
				if timer == nil {
					timer = time.NewTimer(delay)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(delay)
				}
				timerC = timer.C
			case <-timerC:
				if has {
					out <- pending
					has = false
				}
				timerC = nil
			}
		}
	}()
	return out
}
