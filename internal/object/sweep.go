package object

// Sweep implements the mark-and-sweep reclamation strategy the design
// notes ask for in place of the original's incomplete page-element
// deletion (§9 Open Questions). Roots are the master table and every
// live context registered via Track; reachability follows symbols,
// on-demand results already materialized, content, key_values, self,
// source, type, and parents (§3). Unreached, non-built-in value slots
// are deallocated; Shrink then compacts empty pages.
type sweepState struct {
	liveValues  map[*Value]bool
	liveScopes  map[*SymbolTable]bool
}

// Track registers a context as a sweep root so Sweep can include its
// stacks and protected set.
func (e *Engine) Track(c *Context) {
	e.tracked = append(e.tracked, c)
}

func (e *Engine) markValue(s *sweepState, v *Value) {
	if v == nil || s.liveValues[v] {
		return
	}
	s.liveValues[v] = true
	e.markSymbolTable(s, v.Symbols)
	for _, loaded := range v.Content {
		e.markValue(s, loaded)
	}
	for _, bucket := range v.KeyValues {
		for _, kv := range bucket {
			e.markValue(s, kv.Key)
			e.markValue(s, kv.Value)
		}
	}
	e.markValue(s, v.Self)
	e.markValue(s, v.Source)
	e.markValue(s, v.Type)
	for _, p := range v.Parents {
		e.markValue(s, p)
	}
}

func (e *Engine) markSymbolTable(s *sweepState, t *SymbolTable) {
	if t == nil || s.liveScopes[t] {
		return
	}
	s.liveScopes[t] = true
	for _, v := range t.locals {
		e.markValue(s, v)
	}
	e.markSymbolTable(s, t.parent)
}

// Sweep runs one mark-and-sweep pass and returns the number of value
// slots reclaimed.
func (e *Engine) Sweep() int {
	s := &sweepState{liveValues: make(map[*Value]bool), liveScopes: make(map[*SymbolTable]bool)}

	for _, v := range e.Master.locals {
		e.markValue(s, v)
	}
	e.markSymbolTable(s, e.Master)
	for _, c := range e.tracked {
		for _, v := range c.Roots() {
			e.markValue(s, v)
		}
		for _, t := range c.SymbolTableRoots() {
			e.markSymbolTable(s, t)
		}
	}

	reclaimed := 0
	for _, ref := range e.values.AllLive() {
		v := e.values.Get(ref)
		if v.BuiltIn || s.liveValues[v] {
			continue
		}
		e.values.Deallocate(ref)
		reclaimed++
	}
	for _, ref := range e.symbols.AllLive() {
		t := e.symbols.Get(ref)
		if s.liveScopes[t] {
			continue
		}
		e.symbols.Deallocate(ref)
	}
	e.values.Shrink()
	e.symbols.Shrink()

	if e.Hook != nil {
		e.Hook.OnSweep(reclaimed)
	}
	return reclaimed
}
