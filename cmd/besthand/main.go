package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"wildpoker-server/pkg/deck"
	"wildpoker-server/pkg/poker"
	"wildpoker-server/pkg/poker/wild"
)

var (
	wildFlag    = flag.Bool("wild", false, "allow up to two jokers (?R, ?B)")
	workersFlag = flag.Int("workers", 1, "number of goroutines used to resolve jokers")
	verboseFlag = flag.Bool("v", false, "enable debug logging")
)

// evaluator prints the best hand for each set of tokens
type evaluator struct {
	wild     bool
	symbols  bool
	resolver *wild.Resolver
	out      io.Writer
}

func main() {
	flag.Parse()

	if *verboseFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}

	e := &evaluator{
		wild:     *wildFlag,
		symbols:  term.IsTerminal(int(os.Stdout.Fd())),
		resolver: wild.NewResolver(wild.WithWorkers(*workersFlag)),
		out:      os.Stdout,
	}

	if flag.NArg() > 0 {
		if err := e.evaluate(flag.Args()); err != nil {
			logrus.WithError(err).Fatal("could not evaluate hand")
		}

		return
	}

	if err := e.evaluateLines(os.Stdin); err != nil {
		logrus.WithError(err).Fatal("could not evaluate hands")
	}
}

// evaluateLines evaluates one hand per line, blank lines are skipped
// It stops at the first error
func (e *evaluator) evaluateLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		if err := e.evaluate(tokens); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	return scanner.Err()
}

func (e *evaluator) evaluate(tokens []string) error {
	var best deck.Hand
	var rank poker.HandRank
	var err error
	if e.wild {
		best, rank, err = e.resolver.ResolveTokens(tokens)
	} else {
		best, rank, err = poker.Evaluate(tokens)
	}

	if err != nil {
		return err
	}

	poker.SortHand(best)

	cards := make([]string, len(best))
	for i, card := range best {
		if e.symbols {
			cards[i] = card.String()
		} else {
			cards[i] = card.Token()
		}
	}

	_, err = fmt.Fprintf(e.out, "%s\t%s\n", strings.Join(cards, " "), rank.Hand)
	return err
}
