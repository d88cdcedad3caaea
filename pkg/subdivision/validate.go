package subdivision

// Validate проверяет структурные инварианты и возвращает *ValidationError для
// первого нарушения. Разбиение не исправляется.
func (s *Subdivision) Validate() error {
	n := len(s.edges)
	inRange := func(id, size int) bool { return id >= 0 && id < size }

	if n%2 != 0 {
		return invalid(InvariantTwin, "half-edge", n-1, "odd number of half-edges")
	}

	for id, e := range s.edges {
		if !inRange(e.origin, len(s.vertices)) {
			return invalid(InvariantVertex, "half-edge", id, "origin %d out of range", e.origin)
		}
		if !inRange(e.twin, n) || e.twin == id {
			return invalid(InvariantTwin, "half-edge", id, "bad twin %d", e.twin)
		}
		twin := s.edges[e.twin]
		if twin.twin != id {
			return invalid(InvariantTwin, "half-edge", id, "twin(twin) = %d", twin.twin)
		}
		if twin.origin == e.origin {
			return invalid(InvariantTwin, "half-edge", id, "twin starts at the same vertex")
		}
		if !inRange(e.next, n) || !inRange(e.prev, n) {
			return invalid(InvariantNext, "half-edge", id, "next %d, prev %d", e.next, e.prev)
		}
		if s.edges[e.next].prev != id {
			return invalid(InvariantNext, "half-edge", id, "prev(next) = %d", s.edges[e.next].prev)
		}
		if s.edges[e.next].origin != twin.origin {
			return invalid(InvariantNext, "half-edge", id, "next does not start at destination")
		}
		if !inRange(e.face, len(s.faces)) {
			return invalid(InvariantFace, "half-edge", id, "face %d out of range", e.face)
		}
		if s.edges[e.next].face != e.face {
			return invalid(InvariantFace, "half-edge", id, "next lies on face %d, not %d", s.edges[e.next].face, e.face)
		}
	}

	for id, v := range s.vertices {
		if !inRange(v.edge, n) || s.edges[v.edge].origin != id {
			return invalid(InvariantVertex, "vertex", id, "edge %d does not start here", v.edge)
		}
	}

	if len(s.faces) == 0 || s.faces[0].outer != none {
		return invalid(InvariantOuterFace, "face", 0, "face 0 must be unbounded")
	}

	owner := make([]int, n)
	for i := range owner {
		owner[i] = none
	}
	walk := func(start, f int) error {
		if !inRange(start, n) {
			return invalid(InvariantFace, "face", f, "boundary edge %d out of range", start)
		}
		steps := 0
		for e := start; ; {
			if owner[e] == f {
				return invalid(InvariantCycle, "face", f, "cycle from %d does not return to its start", start)
			}
			if owner[e] != none {
				return invalid(InvariantReachable, "half-edge", e, "on boundaries of faces %d and %d", owner[e], f)
			}
			if s.edges[e].face != f {
				return invalid(InvariantFace, "half-edge", e, "lies on face %d, reached from face %d", s.edges[e].face, f)
			}
			owner[e] = f
			e = s.edges[e].next
			steps++
			if e == start {
				return nil
			}
			if steps > n {
				return invalid(InvariantCycle, "face", f, "cycle from %d exceeds %d steps", start, n)
			}
		}
	}

	for f, fc := range s.faces {
		if f > 0 {
			if fc.outer == none {
				return invalid(InvariantOuterFace, "face", f, "second unbounded face")
			}
			if err := walk(fc.outer, f); err != nil {
				return err
			}
		}
		for _, start := range fc.inner {
			if err := walk(start, f); err != nil {
				return err
			}
		}
	}

	for id, f := range owner {
		if f == none {
			return invalid(InvariantReachable, "half-edge", id, "not on any face boundary")
		}
	}
	return nil
}
