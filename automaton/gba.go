package automaton

import "github.com/rfielding/ltlcheck/ltl"

// State is a single tableau-derived automaton state: Now is the full
// set of subformulas this state was built to satisfy (used to decide
// acceptance-family membership), Next is the seed of subformulas the
// successor state(s) must satisfy, Guard is Now's literal projection
// (the symbol this state demands to be current), and Succ holds the
// ids of its successor states.
type State struct {
	Now   map[string]ltl.Formula
	Next  []ltl.Formula
	Guard Guard
	Succ  []int
}

// GBA is a Generalized Büchi Automaton built from an LTL tableau.
// States are indexed 0..len(States)-1.
type GBA struct {
	States     []*State
	Initial    []int
	Acceptance [][]int // one []int of state indices per acceptance family
}

// Build constructs the GBA for a normalized formula phi. phi is
// expected to already be in NNF (ltl.Normalize's output); Build does
// not re-normalize.
func Build(phi ltl.Formula) *GBA {
	b := &gbaBuilder{
		seedToStates: make(map[string][]int),
		stateIndex:   make(map[string]int),
	}
	rootIDs := b.processSeed([]ltl.Formula{phi})
	b.wireTransitions(rootIDs)

	g := &GBA{States: b.states, Initial: rootIDs}
	g.Acceptance = computeAcceptance(phi, b.states)
	return g
}

type gbaBuilder struct {
	states       []*State
	seedToStates map[string][]int
	stateIndex   map[string]int
}

func (b *gbaBuilder) processSeed(seed []ltl.Formula) []int {
	sig := formulaSetSignature(seed)
	if ids, ok := b.seedToStates[sig]; ok {
		return ids
	}
	branches := expand(branch{
		old:      make(map[string]ltl.Formula),
		worklist: seed,
		next:     make(map[string]ltl.Formula),
	})

	ids := make([]int, 0, len(branches))
	for _, br := range branches {
		nowVals := formulaMapValues(br.old)
		nextVals := formulaMapValues(br.next)
		key := formulaSetSignature(nowVals) + "||" + formulaSetSignature(nextVals)
		if id, ok := b.stateIndex[key]; ok {
			ids = append(ids, id)
			continue
		}
		id := len(b.states)
		b.states = append(b.states, &State{
			Now:   br.old,
			Next:  nextVals,
			Guard: literalGuard(br.old),
		})
		b.stateIndex[key] = id
		ids = append(ids, id)
	}
	b.seedToStates[sig] = ids
	return ids
}

func (b *gbaBuilder) wireTransitions(roots []int) {
	visited := make(map[int]bool)
	queue := append([]int{}, roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		st := b.states[id]
		succIDs := b.processSeed(st.Next)
		st.Succ = succIDs
		for _, s := range succIDs {
			if !visited[s] {
				queue = append(queue, s)
			}
		}
	}
}

// acceptanceWitness records, for a single until-like subformula, what
// "discharged" means.
type acceptanceWitness struct {
	key        string
	discharged string // key of the subformula whose presence in Now discharges the obligation
}

func computeAcceptance(phi ltl.Formula, states []*State) [][]int {
	witnesses := collectUntilLike(phi)
	if len(witnesses) == 0 {
		all := make([]int, len(states))
		for i := range states {
			all[i] = i
		}
		return [][]int{all}
	}

	families := make([][]int, len(witnesses))
	for fi, w := range witnesses {
		var members []int
		for si, st := range states {
			if _, obliged := st.Now[w.key]; !obliged {
				members = append(members, si)
				continue
			}
			if _, dischargedNow := st.Now[w.discharged]; dischargedNow {
				members = append(members, si)
			}
		}
		families[fi] = members
	}
	return families
}

// collectUntilLike walks phi's subformula tree once and returns one
// acceptanceWitness per distinct until/eventually subformula found: one
// acceptance family per until subformula, with F ψ treated as ⊤ U ψ.
func collectUntilLike(phi ltl.Formula) []acceptanceWitness {
	seen := make(map[string]bool)
	var out []acceptanceWitness
	var walk func(f ltl.Formula)
	walk = func(f ltl.Formula) {
		key := ltl.Key(f)
		switch v := f.(type) {
		case ltl.UntilFormula:
			if !seen[key] {
				seen[key] = true
				out = append(out, acceptanceWitness{key: key, discharged: ltl.Key(v.Right)})
			}
			walk(v.Left)
			walk(v.Right)
		case ltl.EventuallyFormula:
			if !seen[key] {
				seen[key] = true
				out = append(out, acceptanceWitness{key: key, discharged: ltl.Key(v.Inner)})
			}
			walk(v.Inner)
		case ltl.NotFormula:
			walk(v.Inner)
		case ltl.AndFormula:
			walk(v.Left)
			walk(v.Right)
		case ltl.OrFormula:
			walk(v.Left)
			walk(v.Right)
		case ltl.ImpliesFormula:
			walk(v.Left)
			walk(v.Right)
		case ltl.NextFormula:
			walk(v.Inner)
		case ltl.GloballyFormula:
			walk(v.Inner)
		case ltl.WeakUntilFormula:
			walk(v.Left)
			walk(v.Right)
		case ltl.ReleaseFormula:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(phi)
	return out
}
