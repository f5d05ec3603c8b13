package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/aabb"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <a> <b> <delta>",
	Short: "Run the collision tests on two boxes",
	Long: `Debug tool for the collision core. Boxes are "x,y,halfW,halfH" and the
delta is "dx,dy". Box b moves by delta against the static box a.

Prints the static overlap test with its push-out offset, the swept test, and
the segment test of b's path against a grown by b's half size.

Example:
  baa sweep 0,0,10,10 -30,0,5,5 40,0`,
	Args: cobra.ExactArgs(3),
	Run:  runSweep,
}

func runSweep(_ *cobra.Command, args []string) {
	a, err := parseBox(args[0])
	if err != nil {
		fail("box a: %v", err)
	}
	b, err := parseBox(args[1])
	if err != nil {
		fail("box b: %v", err)
	}
	d, err := parseVec(args[2])
	if err != nil {
		fail("delta: %v", err)
	}

	fmt.Print(describe(a, b, d))
}

// describe runs every collision test and formats the results.
func describe(a, b aabb.AABB, d aabb.Vec2) string {
	var sb strings.Builder

	offset, hit := aabb.StaticOverlap(a, b)
	fmt.Fprintf(&sb, "overlap  hit=%-5t offset=(%g, %g)\n", hit, offset.X, offset.Y)

	pos, hit := aabb.SweepTest(a, b, d)
	fmt.Fprintf(&sb, "sweep    hit=%-5t pos=(%g, %g)\n", hit, pos.X, pos.Y)

	grown := a.Expanded(b.Half)
	t, hit := aabb.SegmentTest(grown, b.Pos, b.Pos.Add(d))
	fmt.Fprintf(&sb, "segment  hit=%-5t t=%g\n", hit, t)

	return sb.String()
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseBox(s string) (aabb.AABB, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return aabb.AABB{}, err
	}
	if f[2] < 0 || f[3] < 0 {
		return aabb.AABB{}, fmt.Errorf("negative half size in %q", s)
	}
	return aabb.New(aabb.V(f[0], f[1]), aabb.V(f[2], f[3])), nil
}

func parseVec(s string) (aabb.Vec2, error) {
	f, err := parseFloats(s, 2)
	if err != nil {
		return aabb.Vec2{}, err
	}
	return aabb.V(f[0], f[1]), nil
}
