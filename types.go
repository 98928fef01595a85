package main

// Resource identifies one of the four resource kinds. Each kind is mined by
// a robot of the same kind.
type Resource int

const (
	Ore Resource = iota
	Clay
	Obsidian
	Geode
)

func (r Resource) String() string {
	switch r {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	}
	return "unknown"
}

// buildOrder is the order in which robot purchases are branched on.
// Every option is explored, so it only affects memo hit patterns.
var buildOrder = [...]Resource{Geode, Obsidian, Clay, Ore}

// Cost is the price of one robot. Geodes are never spent.
type Cost struct {
	Ore      int
	Clay     int
	Obsidian int
}

// Blueprint is the cost table of one problem instance. Immutable once parsed.
type Blueprint struct {
	ID                 int
	OreRobotOre        int
	ClayRobotOre       int
	ObsidianRobotOre   int
	ObsidianRobotClay  int
	GeodeRobotOre      int
	GeodeRobotObsidian int
}

// Cost returns what it takes to build a robot of the given kind.
func (b Blueprint) Cost(kind Resource) Cost {
	switch kind {
	case Ore:
		return Cost{Ore: b.OreRobotOre}
	case Clay:
		return Cost{Ore: b.ClayRobotOre}
	case Obsidian:
		return Cost{Ore: b.ObsidianRobotOre, Clay: b.ObsidianRobotClay}
	case Geode:
		return Cost{Ore: b.GeodeRobotOre, Obsidian: b.GeodeRobotObsidian}
	}
	return Cost{}
}

// State is a snapshot of stocks and robot counts at one minute boundary.
// It is a comparable value type and doubles as part of the memo key.
type State struct {
	Ore      int
	Clay     int
	Obsidian int
	Geode    int

	OreRobots      int
	ClayRobots     int
	ObsidianRobots int
	GeodeRobots    int
}

// initialState is the starting inventory: a single ore robot.
func initialState() State {
	return State{OreRobots: 1}
}

// Robots returns the number of robots of the given kind.
func (s State) Robots(kind Resource) int {
	switch kind {
	case Ore:
		return s.OreRobots
	case Clay:
		return s.ClayRobots
	case Obsidian:
		return s.ObsidianRobots
	case Geode:
		return s.GeodeRobots
	}
	return 0
}

// Stock returns the amount of the given resource on hand.
func (s State) Stock(kind Resource) int {
	switch kind {
	case Ore:
		return s.Ore
	case Clay:
		return s.Clay
	case Obsidian:
		return s.Obsidian
	case Geode:
		return s.Geode
	}
	return 0
}

// memoKey identifies a subproblem: a state with a given number of minutes left.
type memoKey struct {
	remaining int
	state     State
}

// SearchStats counts the work done by one Solve call.
type SearchStats struct {
	Nodes    int
	MemoHits int
	Pruned   int
}
