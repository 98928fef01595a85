package main

// ── Transitions ─────────────────────────────────────────────────────

// produce credits one minute of output from every existing robot.
func (s State) produce() State {
	s.Ore += s.OreRobots
	s.Clay += s.ClayRobots
	s.Obsidian += s.ObsidianRobots
	s.Geode += s.GeodeRobots
	return s
}

func (s State) affords(c Cost) bool {
	return s.Ore >= c.Ore && s.Clay >= c.Clay && s.Obsidian >= c.Obsidian
}

func (s State) pay(c Cost) State {
	s.Ore -= c.Ore
	s.Clay -= c.Clay
	s.Obsidian -= c.Obsidian
	return s
}

func (s State) addRobot(kind Resource) State {
	switch kind {
	case Ore:
		s.OreRobots++
	case Clay:
		s.ClayRobots++
	case Obsidian:
		s.ObsidianRobots++
	case Geode:
		s.GeodeRobots++
	}
	return s
}

// successors enumerates the states reachable one minute later: one per
// affordable robot in buildOrder, followed by building nothing.
//
// Affordability is judged on the stock held at the start of the minute, while
// the resulting stock has this minute's production credited before the cost
// is paid. The new robot starts producing the following minute.
func (s State) successors(bp Blueprint) []State {
	next := make([]State, 0, len(buildOrder)+1)
	produced := s.produce()
	for _, kind := range buildOrder {
		c := bp.Cost(kind)
		if !s.affords(c) {
			continue
		}
		next = append(next, produced.pay(c).addRobot(kind))
	}
	return append(next, produced)
}

// ── Search context ──────────────────────────────────────────────────

// searchContext is the mutable state of a single Solve call. It is never
// shared between calls.
type searchContext struct {
	blueprint Blueprint
	prune     bool

	memo map[memoKey]int
	// statistic[t] is the most geodes seen in any state with t minutes left.
	statistic []int
	stats     SearchStats
}

func newSearchContext(bp Blueprint, horizon int, prune bool) *searchContext {
	return &searchContext{
		blueprint: bp,
		prune:     prune,
		memo:      make(map[memoKey]int),
		statistic: make([]int, horizon+1),
	}
}

func (c *searchContext) remember(remaining int, s State, geodes int) int {
	c.memo[memoKey{remaining, s}] = geodes
	return geodes
}

// best returns the most geodes reachable from s with the given minutes left.
func (c *searchContext) best(remaining int, s State) int {
	c.stats.Nodes++

	if remaining == 0 {
		if s.Geode > c.statistic[0] {
			c.statistic[0] = s.Geode
		}
		return c.remember(0, s, s.Geode)
	}

	if v, ok := c.memo[memoKey{remaining, s}]; ok {
		c.stats.MemoHits++
		return v
	}

	// Empirical bound: a branch that trails the best state seen one minute
	// later by more than its current geode output plus two is abandoned.
	if c.prune && s.Geode+s.GeodeRobots+2 < c.statistic[remaining-1] {
		c.stats.Pruned++
		return c.remember(remaining, s, 0)
	}
	if s.Geode > c.statistic[remaining] {
		c.statistic[remaining] = s.Geode
	}

	most := 0
	for _, n := range s.successors(c.blueprint) {
		if g := c.best(remaining-1, n); g > most {
			most = g
		}
	}
	return c.remember(remaining, s, most)
}

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer maximizes the geodes a blueprint can crack within a horizon.
// It holds no search state, so one Optimizer may serve concurrent Solve calls.
type Optimizer struct {
	blueprint Blueprint
	prune     bool
}

// NewOptimizer creates an optimizer for bp. With prune disabled the search is
// exhaustive (memoized only).
func NewOptimizer(bp Blueprint, prune bool) *Optimizer {
	return &Optimizer{blueprint: bp, prune: prune}
}

// Solve runs the branch-and-bound search over horizon minutes and returns the
// best geode count together with counters describing the search.
func (o *Optimizer) Solve(horizon int) (int, SearchStats) {
	if horizon < 0 {
		horizon = 0
	}
	ctx := newSearchContext(o.blueprint, horizon, o.prune)
	geodes := ctx.best(horizon, initialState())
	return geodes, ctx.stats
}

// Solve returns the most geodes bp can crack in horizon minutes, using the
// default pruning policy.
func Solve(bp Blueprint, horizon int) int {
	geodes, _ := NewOptimizer(bp, true).Solve(horizon)
	return geodes
}
