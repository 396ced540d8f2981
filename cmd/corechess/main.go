// Command corechess is the CLI driver over the core engine: it exposes
// perft and best-move as flag-selected modes, and by default lists the
// legal moves together with the board state,
// in the same bare-flag, no-framework idiom the teacher's UCI binary used
// for its own configuration — just re-pointed away from the UCI loop,
// since that loop sits outside the core's scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/corechess/internal/board"
	"github.com/hailam/corechess/internal/engine"
	"github.com/hailam/corechess/internal/perft"
	"github.com/hailam/corechess/internal/perftcache"
)

var (
	fen         = flag.String("fen", board.StartFEN, "FEN of the position to operate on")
	depth       = flag.Int("depth", 5, "search/perft depth")
	perftMode   = flag.Bool("perft", false, "count leaf nodes at -depth instead of searching")
	perftDivide = flag.Bool("divide", false, "with -perft, print a per-root-move breakdown")
	parallel    = flag.Bool("parallel", false, "with -perft, split the count across root moves")
	bestMove    = flag.Bool("best-move", false, "search for the best move at -depth instead of perft")
	useCache    = flag.Bool("cache", false, "with -perft, memoize (fen,depth)->nodes in a local BadgerDB cache")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	switch {
	case *perftMode:
		runPerft(pos)
	case *bestMove:
		runBestMove(pos)
	default:
		runLegalMoves(pos)
	}
}

func runPerft(pos board.Position) {
	if *useCache {
		dir, err := perftcache.DefaultDir()
		if err != nil {
			log.Fatalf("could not resolve perft cache dir: %v", err)
		}
		cache, err := perftcache.Open(dir)
		if err != nil {
			log.Fatalf("could not open perft cache: %v", err)
		}
		defer cache.Close()

		if nodes, found, err := cache.Get(*fen, *depth); err == nil && found {
			fmt.Printf("depth %d: %d nodes (cached)\n", *depth, nodes)
			return
		}
	}

	if *perftDivide {
		divided := perft.Divide(pos, *depth)
		var total uint64
		for m, n := range divided {
			fmt.Printf("%s: %d\n", m.String(), n)
			total += n
		}
		fmt.Printf("total: %d\n", total)
		return
	}

	if *parallel {
		nodes, err := perft.CountParallel(context.Background(), pos, *depth)
		if err != nil {
			log.Fatalf("perft failed: %v", err)
		}
		fmt.Printf("depth %d: %d nodes\n", *depth, nodes)
		if *useCache {
			storePerftResult(nodes)
		}
		return
	}

	report := perft.Run(pos, *depth)
	fmt.Println(report.String())
	if *useCache {
		storePerftResult(report.Nodes)
	}
}

func storePerftResult(nodes uint64) {
	dir, err := perftcache.DefaultDir()
	if err != nil {
		log.Printf("could not resolve perft cache dir: %v", err)
		return
	}
	cache, err := perftcache.Open(dir)
	if err != nil {
		log.Printf("could not open perft cache: %v", err)
		return
	}
	defer cache.Close()
	if err := cache.Put(*fen, *depth, nodes); err != nil {
		log.Printf("could not store perft result: %v", err)
	}
}

func runBestMove(pos board.Position) {
	eng := engine.NewEngine()
	move, score := eng.BestMove(pos, *depth, nil)
	if move == board.NoMove {
		fmt.Printf("no legal moves (%v)\n", eng.BoardState(pos))
		return
	}
	fmt.Printf("best move: %s (score %d, %d nodes)\n", move.String(), score, eng.Nodes())
}

func runLegalMoves(pos board.Position) {
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		fmt.Println(moves.Get(i).String())
	}
	fmt.Printf("%d legal moves, state=%v\n", moves.Len(), pos.BoardState())
}
