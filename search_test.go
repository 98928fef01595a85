package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlueprintCost(t *testing.T) {
	assert.Equal(t, Cost{Ore: 4}, blueprint1.Cost(Ore))
	assert.Equal(t, Cost{Ore: 2}, blueprint1.Cost(Clay))
	assert.Equal(t, Cost{Ore: 3, Clay: 14}, blueprint1.Cost(Obsidian))
	assert.Equal(t, Cost{Ore: 2, Obsidian: 7}, blueprint1.Cost(Geode))
}

func TestSuccessors_NothingAffordable(t *testing.T) {
	next := initialState().successors(blueprint1)
	require.Len(t, next, 1)
	assert.Equal(t, State{Ore: 1, OreRobots: 1}, next[0])
}

func TestSuccessors_Order(t *testing.T) {
	s := State{Ore: 10, Clay: 20, Obsidian: 10, OreRobots: 1, ClayRobots: 1, ObsidianRobots: 1}
	next := s.successors(blueprint1)
	require.Len(t, next, 5)
	assert.Equal(t, 1, next[0].GeodeRobots)
	assert.Equal(t, 2, next[1].ObsidianRobots)
	assert.Equal(t, 2, next[2].ClayRobots)
	assert.Equal(t, 2, next[3].OreRobots)
	assert.Equal(t, s.produce(), next[4])
}

func TestSuccessors_NewRobotDoesNotProduceThisMinute(t *testing.T) {
	s := State{Ore: 2, OreRobots: 1}
	next := s.successors(blueprint1)

	var built *State
	for i := range next {
		if next[i].ClayRobots == 1 {
			built = &next[i]
		}
	}
	require.NotNil(t, built, "clay robot should be affordable")
	assert.Equal(t, 0, built.Clay)
	// 2 on hand + 1 produced - 2 spent
	assert.Equal(t, 1, built.Ore)
}

func TestSuccessors_AffordabilityUsesStartOfMinuteStock(t *testing.T) {
	// One ore short; this minute's production must not count towards the cost.
	s := State{Ore: 3, OreRobots: 5}
	for _, n := range s.successors(blueprint1) {
		assert.Zero(t, n.OreRobots-s.OreRobots, "ore robot costs 4, only 3 on hand")
	}
}

func TestSuccessors_Invariants(t *testing.T) {
	// Walk a few levels of the tree and check every transition.
	frontier := []State{initialState()}
	for depth := 0; depth < 10; depth++ {
		var next []State
		for _, s := range frontier {
			succ := s.successors(blueprint2)
			require.NotEmpty(t, succ)
			require.LessOrEqual(t, len(succ), 5)
			for _, n := range succ {
				for _, kind := range buildOrder {
					assert.GreaterOrEqual(t, n.Stock(kind), 0)
					assert.GreaterOrEqual(t, n.Robots(kind), s.Robots(kind))
				}
				assert.Equal(t, s.Geode+s.GeodeRobots, n.Geode)
			}
			next = append(next, succ...)
		}
		if len(next) > 2000 {
			next = next[:2000]
		}
		frontier = next
	}
}

func TestSolve_ZeroHorizon(t *testing.T) {
	assert.Zero(t, Solve(blueprint1, 0))
	assert.Zero(t, Solve(blueprint2, 0))
	assert.Zero(t, Solve(blueprint1, -3))
}

func TestSolve_TooShortForGeodes(t *testing.T) {
	// The first geode robot needs an obsidian robot which needs clay robots.
	for h := 0; h <= 5; h++ {
		assert.Zero(t, Solve(blueprint1, h), "horizon %d", h)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	first := Solve(blueprint2, 24)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Solve(blueprint2, 24))
	}
}

func TestSolve_CheapGeodes(t *testing.T) {
	// Everything costs one ore, so a geode robot can be bought every minute
	// from minute 2 on.
	bp := Blueprint{ID: 9, OreRobotOre: 1, ClayRobotOre: 1, ObsidianRobotOre: 1, GeodeRobotOre: 1}
	// Robots bought in minutes 2..5 produce 3+2+1+0 geodes.
	assert.Equal(t, 6, Solve(bp, 5))
}

func TestSolve_UnprunedMonotonic(t *testing.T) {
	for _, bp := range []Blueprint{blueprint1, blueprint2} {
		opt := NewOptimizer(bp, false)
		prev := 0
		for h := 0; h <= 16; h++ {
			got, stats := opt.Solve(h)
			assert.GreaterOrEqual(t, got, prev, "blueprint %d horizon %d", bp.ID, h)
			assert.Zero(t, stats.Pruned)
			prev = got
		}
	}
}

func TestSolve_Stats(t *testing.T) {
	geodes, stats := NewOptimizer(blueprint1, true).Solve(24)
	assert.Equal(t, 9, geodes)
	assert.Positive(t, stats.Nodes)
	assert.Positive(t, stats.MemoHits)
	assert.Positive(t, stats.Pruned)
	assert.Less(t, stats.MemoHits+stats.Pruned, stats.Nodes)
}

func TestSearchContext_Memoizes(t *testing.T) {
	ctx := newSearchContext(blueprint1, 4, true)
	got := ctx.best(4, initialState())
	assert.Zero(t, got)
	v, ok := ctx.memo[memoKey{4, initialState()}]
	require.True(t, ok)
	assert.Zero(t, v)

	nodes := ctx.stats.Nodes
	ctx.best(4, initialState())
	assert.Equal(t, nodes+1, ctx.stats.Nodes)
	assert.Equal(t, 1, ctx.stats.MemoHits)
}
