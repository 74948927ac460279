package engine

// Subscribe registers fn to run after every committed locale change,
// with the newly active locale. The returned cancel func removes the
// subscription. Callbacks run synchronously on the committing goroutine
// and should return quickly.
func (e *Engine) Subscribe(fn func(code string)) (cancel func()) {
	e.subMu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		delete(e.subs, id)
		e.subMu.Unlock()
	}
}

// notify invokes all subscribers outside the subscriber lock, so a
// callback may subscribe or cancel without deadlocking.
func (e *Engine) notify(code string) {
	e.subMu.Lock()
	fns := make([]func(string), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()

	for _, fn := range fns {
		fn(code)
	}
}
