// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard correctness harness for a move generator: the counts at
// each depth from a known starting position are published values, and any
// divergence pinpoints a move generation bug.
package perft

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/corechess/internal/board"
)

// Count returns the number of leaf nodes reachable from pos in exactly
// depth plies of legal moves. It recurses over immutable Positions —
// there is no unmake, only MakeMove producing the next value.
func Count(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		nodes += Count(pos.MakeMove(moves.Get(i)), depth-1)
	}
	return nodes
}

// Divide returns, for each legal root move, the perft count of the
// resulting subtree at depth-1 — the standard "perft divide" breakdown
// used to bisect a move generator bug down to a single root move.
func Divide(pos board.Position, depth int) map[board.Move]uint64 {
	moves := pos.GenerateLegalMoves()
	result := make(map[board.Move]uint64, moves.Len())

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if depth <= 1 {
			result[m] = 1
		} else {
			result[m] = Count(pos.MakeMove(m), depth-1)
		}
	}
	return result
}

// CountParallel splits the perft count across root moves, one goroutine
// per root move, via errgroup. This is a harness-level concurrency use —
// it parallelizes the node-counting sweep, not the negamax search — and
// is grounded on the same root-split idea as the teacher's worker
// fan-out, minus anything shared-state (no transposition table, no
// aspiration windows, nothing to synchronize beyond summing results).
func CountParallel(ctx context.Context, pos board.Position, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	moves := pos.GenerateLegalMoves()
	counts := make([]uint64, moves.Len())

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.Get(i)
		g.Go(func() error {
			counts[i] = Count(pos.MakeMove(m), depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Report is a human-readable summary of a single perft run, suitable for
// the CLI's reporting line.
type Report struct {
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
	NodesSec float64
}

// Run times a sequential Count and returns a formatted report.
func Run(pos board.Position, depth int) Report {
	start := time.Now()
	nodes := Count(pos, depth)
	elapsed := time.Since(start)

	var nps float64
	if elapsed > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}

	return Report{Depth: depth, Nodes: nodes, Elapsed: elapsed, NodesSec: nps}
}

// String formats the report using go-humanize for the large node counts
// and throughput figures a deep perft run produces.
func (r Report) String() string {
	return fmt.Sprintf("depth %d: %s nodes in %s (%s nodes/sec)",
		r.Depth,
		humanize.Comma(int64(r.Nodes)),
		r.Elapsed,
		humanize.SIWithDigits(r.NodesSec, 2, "nodes/sec"),
	)
}
