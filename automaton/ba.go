package automaton

// BAState is a state of the degeneralized Büchi Automaton: the pair
// (GBA state id, acceptance-family counter).
type BAState struct {
	GBAState int
	Counter  int // 1-indexed, cycles through {1..k}
}

// BA is a Büchi Automaton with a single acceptance set, obtained from
// a GBA by the layered-product degeneralization construction.
type BA struct {
	GBA       *GBA
	States    []BAState
	Initial   []int
	Accepting map[int]bool
	families  int
	gbaToBA   map[[2]int]int // (gbaState, counter) -> BA state index
}

// Degeneralize builds the BA for g. When g has no acceptance families
// (k=0), every state trivially belongs to a single family F1, so every
// accepting cycle in the GBA is already accepting in the BA.
func Degeneralize(g *GBA) *BA {
	k := len(g.Acceptance)
	if k == 0 {
		k = 1
	}
	inF := make([][]bool, k)
	for i := range inF {
		inF[i] = make([]bool, len(g.States))
		if i < len(g.Acceptance) {
			for _, s := range g.Acceptance[i] {
				inF[i][s] = true
			}
		} else {
			for s := range inF[i] {
				inF[i][s] = true
			}
		}
	}

	ba := &BA{
		GBA:       g,
		Accepting: make(map[int]bool),
		families:  k,
		gbaToBA:   make(map[[2]int]int),
	}

	stateID := func(q, counter int) int {
		key := [2]int{q, counter}
		if id, ok := ba.gbaToBA[key]; ok {
			return id
		}
		id := len(ba.States)
		ba.States = append(ba.States, BAState{GBAState: q, Counter: counter})
		ba.gbaToBA[key] = id
		if counter == 1 && inF[0][q] {
			ba.Accepting[id] = true
		}
		return id
	}

	for _, q0 := range g.Initial {
		ba.Initial = append(ba.Initial, stateID(q0, 1))
	}

	// BFS over BA states, wiring transitions lazily as states are
	// discovered, since the BA's reachable fragment can be smaller than
	// the full GBA-states × {1..k} product.
	queue := append([]int{}, ba.Initial...)
	visited := make(map[int]bool)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		cur := ba.States[id]
		q, i := cur.GBAState, cur.Counter
		j := i
		if inF[i-1][q] {
			j = (i % k) + 1
		}
		for _, qp := range g.States[q].Succ {
			succID := stateID(qp, j)
			if !visited[succID] {
				queue = append(queue, succID)
			}
		}
	}
	return ba
}

// Guard returns the literal guard of BA state s (inherited from its
// underlying GBA state, since the degeneralization layers a counter on
// top without changing what symbol a state demands).
func (ba *BA) Guard(s int) Guard {
	return ba.GBA.States[ba.States[s].GBAState].Guard
}

// Succ returns the BA-successors of state s, computed on demand from
// the underlying GBA successors and the degeneralization counter rule.
func (ba *BA) Succ(s int) []int {
	cur := ba.States[s]
	q, i := cur.GBAState, cur.Counter
	k := ba.families
	inFi := false
	if i-1 < len(ba.GBA.Acceptance) {
		for _, m := range ba.GBA.Acceptance[i-1] {
			if m == q {
				inFi = true
				break
			}
		}
	} else {
		inFi = true // synthetic trivial family when k was promoted from 0 to 1
	}
	j := i
	if inFi {
		j = (i % k) + 1
	}
	out := make([]int, 0, len(ba.GBA.States[q].Succ))
	for _, qp := range ba.GBA.States[q].Succ {
		out = append(out, ba.resolve(qp, j))
	}
	return out
}

// resolve returns the BA state id for (q, counter), creating it if this
// exact pair was not reached during the initial BFS (defensive: Succ
// may be invoked by callers exploring states the constructor's BFS
// already covers, so this should always hit the cache in practice).
func (ba *BA) resolve(q, counter int) int {
	key := [2]int{q, counter}
	if id, ok := ba.gbaToBA[key]; ok {
		return id
	}
	id := len(ba.States)
	ba.States = append(ba.States, BAState{GBAState: q, Counter: counter})
	ba.gbaToBA[key] = id
	if counter == 1 {
		if len(ba.GBA.Acceptance) == 0 {
			ba.Accepting[id] = true
		} else if counter-1 < len(ba.GBA.Acceptance) {
			for _, m := range ba.GBA.Acceptance[0] {
				if m == q {
					ba.Accepting[id] = true
					break
				}
			}
		}
	}
	return id
}
