// File: dirty.go
// Role: Case B bookkeeping — marking the dirty subtree on edge removal
// or weight increase, and maintaining the parent/children multimap that
// makes the descendant walk sub-global instead of an O(N) rescan.
package spt

// expandDirty marks `to` dirty and, if safe, its full descendant subtree
// in the cached SPT. The single-step descendant walk (spec §4.2.3) is
// only trustworthy when this is the first tightening mutation since the
// last commit; e.graphVersion has already been incremented by the
// caller, so "first since commit" is committed.version == graphVersion-1.
//
// When a second Case B mutation lands before the next query, the cached
// parent/children structure may already be out of date for vertices the
// first mutation didn't visit, so a second single-step walk cannot be
// trusted to find every truly-affected descendant. Rather than risk
// under-marking dirty (which would violate the invariant that dirty
// covers every vertex whose true distance increased), the engine falls
// back to treating the whole vertex space as dirty — safe, and no more
// expensive than the full recompute this case degrades to anyway.
func (e *Engine) expandDirty(to int) {
	if e.source == noParent {
		return
	}

	e.markDirty(to)

	if e.committed.version == e.graphVersion-1 {
		e.markDescendantsDirty(to)
		return
	}

	if e.committed.version >= 0 {
		e.dirtyAll = true
	}
}

// markDirty adds v to the dirty set if not already present.
func (e *Engine) markDirty(v int) {
	if e.dirtyMask[v] {
		return
	}
	e.dirtyMask[v] = true
	e.dirtyList = append(e.dirtyList, v)
}

// markDescendantsDirty marks every descendant of root in the cached SPT
// (child c of u iff parent[c] == u), via BFS over the children multimap.
func (e *Engine) markDescendantsDirty(root int) {
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, c := range e.children[u] {
			if e.dirtyMask[c] {
				continue
			}
			e.markDirty(c)
			queue = append(queue, c)
		}
	}
}

// setParent assigns parent[v] = u, updating the children multimap: v is
// removed from its old parent's child list (if any) and appended to u's.
func (e *Engine) setParent(v, u int) {
	if old := e.parent[v]; old != noParent && old != v {
		e.children[old] = removeChild(e.children[old], v)
	}
	e.parent[v] = u
	if u != v {
		e.children[u] = append(e.children[u], v)
	}
}

// clearParent resets parent[v] to "none" and detaches it from its former
// parent's child list. Used when resetting dirty vertices before a Case B
// recompute.
func (e *Engine) clearParent(v int) {
	if old := e.parent[v]; old != noParent && old != v {
		e.children[old] = removeChild(e.children[old], v)
	}
	e.parent[v] = noParent
}

func removeChild(children []int, v int) []int {
	for i, c := range children {
		if c == v {
			return append(children[:i], children[i+1:]...)
		}
	}

	return children
}

// resetMutationBookkeeping clears pendingRelax/dirty state after a query
// has incorporated it, reusing the existing backing arrays.
func (e *Engine) resetMutationBookkeeping() {
	e.pendingRelax = e.pendingRelax[:0]

	for _, v := range e.dirtyList {
		e.dirtyMask[v] = false
	}
	e.dirtyList = e.dirtyList[:0]
	e.dirtyAll = false
}
