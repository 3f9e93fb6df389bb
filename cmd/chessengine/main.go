// Command chessengine is the CLI front end: a thin shell around the
// engine core that speaks UCI on stdin/stdout, or, given flags, plays one
// move non-interactively and exits. Flag parsing, stdin/stdout wiring, and
// interactive prompting all live here; none of it belongs in the core.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"

	"chessengine/internal/chess"
	"chessengine/internal/engine"
	"chessengine/uci"
)

var log = logging.MustGetLogger("chessengine")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

func main() {
	gameTimeMS := flag.Int("g", 0, "total game time in milliseconds")
	remainingTimeMS := flag.Int("t", 0, "remaining time in milliseconds")
	interactive := flag.Bool("interactive", false, "play a game against the engine from the command line")
	flag.Parse()

	switch {
	case *interactive:
		runInteractive()
	case flag.NArg() == 0 && *gameTimeMS == 0 && *remainingTimeMS == 0:
		uci.Run(os.Stdin, os.Stdout)
	default:
		runOneShot(*gameTimeMS, *remainingTimeMS, flag.Args())
	}
}

// runOneShot applies the positional UCI move strings to the starting
// position, searches for one move under the given game/remaining time
// budget, and prints a single "bestmove" line, per the CLI surface named
// in the external interfaces of the engine's design.
func runOneShot(gameTimeMS, remainingTimeMS int, moves []string) {
	b := chess.NewBoard()
	for _, tok := range moves {
		m, err := uci.ParseMove(b, tok)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessengine: %v\n", err)
			os.Exit(1)
		}
		b.MakeMove(m)
	}

	budget := budgetFromFlags(gameTimeMS, remainingTimeMS)
	s := engine.NewSearcher(64, engine.DefaultConfig)
	res := s.SearchTime(b, 64, budget)
	if res.BestMove == chess.NoMove {
		// Only a true checkmate/stalemate position reaches this: SearchTime
		// itself now falls back to the first legal move on a time cutoff.
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %v\n", res.BestMove.UCI())
}

// budgetFromFlags implements spec §4.7's search_time(game_ms, our_ms):
// budget = min(our_ms/5, game_ms/60). A flag left at 0 contributes no
// upper bound (a zero game/remaining time was never given on the CLI),
// falling back to the default move budget when neither is set.
func budgetFromFlags(gameTimeMS, remainingTimeMS int) time.Duration {
	if gameTimeMS <= 0 && remainingTimeMS <= 0 {
		return 5 * time.Second
	}
	budget := -1
	if remainingTimeMS > 0 {
		budget = remainingTimeMS / 5
	}
	if gameTimeMS > 0 {
		if perGame := gameTimeMS / 60; budget < 0 || perGame < budget {
			budget = perGame
		}
	}
	if budget < 0 {
		budget = 0
	}
	return time.Duration(budget) * time.Millisecond
}

// runInteractive is a command-line play loop against the engine, folded
// in from the teacher's stand-alone command-line front end as a
// convenience mode rather than a separate binary.
func runInteractive() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Enter a FEN string for the starting position (or 'startpos'):")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	b := chess.NewBoard()
	if line != "" && line != "startpos" {
		if err := b.SetFEN(line); err != nil {
			fmt.Fprintf(os.Stderr, "chessengine: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Are you white or black?")
	line, _ = reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	humanIsWhite := line == "white"
	humanToMove := humanIsWhite == (b.SideToMove == chess.White)

	s := engine.NewSearcher(64, engine.DefaultConfig)
	for {
		fmt.Println(b)

		legal := chess.GenerateLegal(b)
		if len(legal) == 0 {
			if b.InCheck() {
				fmt.Println("checkmate")
			} else {
				fmt.Println("stalemate")
			}
			return
		}

		if humanToMove {
			fmt.Print("your move (UCI notation)> ")
			line, _ = reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if line == "quit" {
				return
			}
			m, err := uci.ParseMove(b, line)
			if err != nil {
				log.Errorf("%v", err)
				continue
			}
			b.MakeMove(m)
		} else {
			res := s.SearchTime(b, 64, 3*time.Second)
			if res.BestMove == chess.NoMove {
				fmt.Println("no legal move found")
				return
			}
			fmt.Printf("engine plays %v\n", res.BestMove.UCI())
			b.MakeMove(res.BestMove)
		}
		humanToMove = !humanToMove
	}
}
