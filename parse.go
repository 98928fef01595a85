package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedBlueprint is returned for input lines that do not describe a blueprint.
var ErrMalformedBlueprint = errors.New("malformed blueprint")

var blueprintRe = regexp.MustCompile(`Blueprint (?P<id>\d+):.+ore robot costs (?P<oroc>\d+) ore.+clay robot costs (?P<croc>\d+) ore.+obsidian robot costs (?P<sroc>\d+) ore and (?P<srcc>\d+) clay.+geode robot costs (?P<groc>\d+) ore and (?P<grsc>\d+) obsidian`)

// ParseBlueprint parses a single line of the form
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. ...
func ParseBlueprint(line string) (Blueprint, error) {
	m := blueprintRe.FindStringSubmatch(line)
	if m == nil {
		return Blueprint{}, fmt.Errorf("%w: %q", ErrMalformedBlueprint, line)
	}

	var bp Blueprint
	fields := map[string]*int{
		"id":   &bp.ID,
		"oroc": &bp.OreRobotOre,
		"croc": &bp.ClayRobotOre,
		"sroc": &bp.ObsidianRobotOre,
		"srcc": &bp.ObsidianRobotClay,
		"groc": &bp.GeodeRobotOre,
		"grsc": &bp.GeodeRobotObsidian,
	}

	for i, name := range blueprintRe.SubexpNames() {
		dst, ok := fields[name]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w: %s: %w", ErrMalformedBlueprint, name, err)
		}
		*dst = v
	}
	return bp, nil
}

// ParseBlueprints parses one blueprint per line. Blank lines are skipped; any
// other line that fails to parse aborts the whole input.
func ParseBlueprints(input string) ([]Blueprint, error) {
	var out []Blueprint
	for n, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bp, err := ParseBlueprint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, bp)
	}
	return out, nil
}

// trimInput strips the leading and trailing newlines an input file usually carries.
func trimInput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Trim(s, "\n")
}

// LoadBlueprints reads and parses a blueprint list from disk.
func LoadBlueprints(path string) ([]Blueprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	bps, err := ParseBlueprints(trimInput(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return bps, nil
}

// FindBlueprint returns the blueprint with the given ID, or nil if not found.
func FindBlueprint(bps []Blueprint, id int) *Blueprint {
	for i := range bps {
		if bps[i].ID == id {
			return &bps[i]
		}
	}
	return nil
}
