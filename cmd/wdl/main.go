package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/617a7a/wordlesolver/game"
	"github.com/617a7a/wordlesolver/solver"
	"github.com/617a7a/wordlesolver/strategycache"
	"github.com/617a7a/wordlesolver/wordlist"
	"github.com/617a7a/wordlesolver/words"
)

type configuration struct {
	dict     *words.Dictionary
	list     []string
	workers  int
	progress bool
}

func configure(wordsFile string, count, workers int, progress bool) (configuration, error) {
	var list []string
	var err error
	if wordsFile == "" {
		list = wordlist.Default()
	} else {
		list, err = wordlist.FromFile(wordsFile)
		if err != nil {
			return configuration{}, err
		}
	}
	if count > 0 && count < len(list) {
		list = list[:count]
	}
	dict, err := words.NewDictionary(list)
	if err != nil {
		return configuration{}, err
	}
	return configuration{dict: dict, list: list, workers: workers, progress: progress}, nil
}

func (c configuration) bar(n int) *progressbar.ProgressBar {
	if c.progress {
		return progressbar.Default(int64(n))
	}
	return progressbar.DefaultSilent(int64(n))
}

// openingFor restores the opening guess from the on-disk strategy cache when
// the word list digest matches, otherwise computes and stores it.
func openingFor(c configuration, search *solver.Search, noCache bool) (*solver.Opening, error) {
	opening := &solver.Opening{}
	if noCache {
		return opening, nil
	}
	cache, err := strategycache.Open()
	if err != nil {
		log.Warn().Err(err).Msg("strategy cache unavailable, recomputing")
		return opening, nil
	}
	digest := strategycache.Digest(c.list)
	if cached, ok := cache.Lookup(digest); ok {
		w, err := words.Parse(cached)
		if err == nil && c.dict.Contains(w) {
			log.Info().Str("guess", cached).Str("wordset", digest[:12]).Msg("using cached opening strategy")
			opening.Seed(solver.Result{Guess: w, Score: solver.Entropy(c.dict, solver.AllOf(c.dict), w)})
			return opening, nil
		}
		log.Warn().Str("guess", cached).Msg("cached opening not in word list, recomputing")
	}

	log.Info().Int("words", c.dict.Len()).Msg("no cached strategy, computing opening guess")
	start := time.Now()
	res, err := opening.Best(search)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("guess", res.Guess.String()).
		Float64("entropy", res.Score).
		Dur("elapsed", time.Since(start)).
		Msg("opening guess computed")
	if err := cache.Store(digest, res.Guess.String()); err != nil {
		log.Warn().Err(err).Msg("could not persist opening strategy")
	}
	return opening, nil
}

func tiles(guess words.Word, pattern words.Pattern) string {
	var b strings.Builder
	for i, t := range pattern {
		letter := string(guess[i])
		switch t {
		case words.Exact:
			b.WriteString(color.InGreen(letter))
		case words.Present:
			b.WriteString(color.InYellow(letter))
		default:
			b.WriteString(color.InRed(letter))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// solve runs the assistant: replay any guess/pattern pairs given as
// arguments, then suggest. Interactive mode keeps suggesting and reads each
// round's feedback until the session is terminal.
func solve(c configuration, noCache bool, interactive bool, pairs []string) error {
	search := solver.NewSearch(c.dict, c.workers)
	opening, err := openingFor(c, search, noCache)
	if err != nil {
		return err
	}
	session := solver.NewSession(search, opening)

	for i := 0; i+1 < len(pairs); i += 2 {
		guess, err := words.Parse(pairs[i])
		if err != nil {
			return fmt.Errorf("guess %q: %w", pairs[i], err)
		}
		pattern, err := words.ParsePattern(pairs[i+1])
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pairs[i+1], err)
		}
		if err := session.Record(guess, pattern); err != nil {
			return err
		}
		fmt.Println(tiles(guess, pattern))
	}

	reader := bufio.NewReader(os.Stdin)
	for session.State() == solver.Active {
		guess, err := session.Suggest()
		if err != nil {
			return err
		}
		fmt.Printf("guess %s (%d candidates)\n", color.InBlue(guess.String()), session.Remaining())
		if !interactive {
			printCandidates(session)
			return nil
		}

		fmt.Print("pattern (r/y/g, e.g. gyrrr), or 'word pattern' if you played another word: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "exit" || line == "" {
			return nil
		}
		if fields := strings.Fields(line); len(fields) == 2 {
			guess, err = words.Parse(fields[0])
			if err != nil {
				fmt.Println(err)
				continue
			}
			line = fields[1]
		}
		pattern, err := words.ParsePattern(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := session.Record(guess, pattern); err != nil {
			return err
		}
		fmt.Println(tiles(guess, pattern))
		printCandidates(session)
	}

	switch session.State() {
	case solver.Solved:
		fmt.Println(color.InGreen("solved!"))
	case solver.Exhausted:
		fmt.Println(color.InRed("out of guesses"))
	case solver.Contradiction:
		fmt.Println(color.InRed("no word in the list matches that feedback; the answer is not in the word list"))
	}
	return nil
}

func printCandidates(session *solver.Session) {
	remaining := session.Remaining()
	if remaining == 0 || remaining > 10 {
		fmt.Println(remaining, "candidates remain")
		return
	}
	names := make([]string, 0, remaining)
	for _, w := range session.Candidates() {
		names = append(names, w.String())
	}
	fmt.Println(remaining, "candidates remain:", strings.Join(names, " "))
}

// play is the game side: guess the secret within six tries.
func play(c configuration, secretString string) error {
	var g *game.Game
	if secretString == "" {
		g = game.NewRandom(c.dict)
	} else {
		secret, err := words.Parse(strings.ToLower(secretString))
		if err != nil {
			return err
		}
		g, err = game.New(c.dict, secret)
		if err != nil {
			return err
		}
	}

	fmt.Println("I have a 5 letter word in mind. Can you guess it?")
	if _, ok := os.LookupEnv("DEBUG"); ok {
		fmt.Println("(debug:", color.InBlue(g.Secret().String())+")")
	}

	reader := bufio.NewReader(os.Stdin)
	for g.State() == game.Playing {
		fmt.Print(">> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "exit" {
			fmt.Println("The word was", color.InBlue(g.Secret().String())+"!")
			return nil
		}
		pattern, err := g.Guess(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(tiles(words.MustParse(strings.ToLower(line)), pattern))
		if g.State() == game.Playing {
			fmt.Println("You have", g.TurnsLeft(), "chances left.")
		}
	}
	if g.State() == game.Won {
		fmt.Println(color.InGreen("You guessed it right!"))
	} else {
		fmt.Println("You ran out of chances. The word was", color.InBlue(g.Secret().String())+"!")
	}
	return nil
}

// first ranks every word as an opening guess by entropy against the full
// word list.
func first(c configuration, top int) error {
	candidates := solver.AllOf(c.dict)
	bar := c.bar(c.dict.Len())
	results := make([]solver.Result, 0, c.dict.Len())
	for _, w := range c.dict.Words() {
		results = append(results, solver.Result{Guess: w, Score: solver.Entropy(c.dict, candidates, w)})
		bar.Add(1)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if top > 0 && top < len(results) {
		results = results[:top]
	}
	for _, res := range results {
		fmt.Printf("%s %.4f\n", res.Guess, res.Score)
	}
	return nil
}

// sim plays the solver against each secret and reports how it did.
func sim(c configuration, noCache bool, secretStrings []string) error {
	search := solver.NewSearch(c.dict, c.workers)
	opening, err := openingFor(c, search, noCache)
	if err != nil {
		return err
	}

	secrets := c.dict.Words()
	if len(secretStrings) > 0 {
		secrets = make([]words.Word, 0, len(secretStrings))
		for _, s := range secretStrings {
			w, err := words.Parse(strings.ToLower(s))
			if err != nil {
				return err
			}
			if !c.dict.Contains(w) {
				return fmt.Errorf("secret not in dictionary: %s", s)
			}
			secrets = append(secrets, w)
		}
	}

	bar := c.bar(len(secrets))
	solved := 0
	histogram := map[int][]string{}
	for _, secret := range secrets {
		guesses, state, err := solver.Simulate(search, opening, secret)
		if err != nil {
			return err
		}
		if state == solver.Solved {
			solved++
			histogram[len(guesses)] = append(histogram[len(guesses)], secret.String())
		} else {
			histogram[-1] = append(histogram[-1], secret.String())
		}
		bar.Add(1)
	}

	counts := make([]int, 0, len(histogram))
	for k := range histogram {
		counts = append(counts, k)
	}
	sort.Ints(counts)
	for _, n := range counts {
		label := fmt.Sprintf("%d guesses", n)
		if n == -1 {
			label = "unsolved"
		}
		fmt.Printf("%s: %d\n", label, len(histogram[n]))
		if len(histogram[n]) <= 20 {
			fmt.Println(" ", strings.Join(histogram[n], " "))
		}
	}
	fmt.Printf("solved %d/%d (%.1f%%)\n", solved, len(secrets), 100*float64(solved)/float64(len(secrets)))
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}

	wordsFile := ""
	count := 0
	workers := 0
	progress := false
	noCache := false
	// command specific flags
	interactive := false
	secret := ""
	top := 0
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver and game",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Value:       "",
				Aliases:     []string{"w"},
				Usage:       "word list file, one five letter word per line; default is the embedded list",
				Destination: &wordsFile,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       0,
				Usage:       "parallel workers for the dictionary scan, 0 is one per CPU",
				Destination: &workers,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "no-cache",
				Value:       false,
				Usage:       "skip the on-disk opening strategy cache",
				Destination: &noCache,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "solve",
				Usage: `solve [guess pattern]...
				Suggest the next guess. Pairs of guess and pattern (r=absent y=present g=exact,
				like "raise rryrg") replay a position; with -i the solver keeps suggesting and
				reads each round's feedback from the terminal.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "interactive",
						Value:       false,
						Aliases:     []string{"i"},
						Usage:       "keep suggesting and read feedback until the game ends",
						Destination: &interactive,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess pattern", 1)
					}
					c, err := configure(wordsFile, count, workers, progress)
					if err != nil {
						return err
					}
					// with no replayed pairs there is nothing to print but the opener,
					// so go interactive
					return solve(c, noCache, interactive || cmd.NArg() == 0, cmd.Args().Slice())
				},
			},
			{
				Name: "play",
				Usage: `play
				Play wordle in the terminal against a randomly chosen secret.
				Set DEBUG to reveal the secret, type exit to give up.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "secret",
						Value:       "",
						Usage:       "fix the secret word instead of choosing randomly",
						Destination: &secret,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c, err := configure(wordsFile, count, workers, progress)
					if err != nil {
						return err
					}
					return play(c, secret)
				},
			},
			{
				Name: "first",
				Usage: `first
				Rank opening guesses by entropy against the full word list.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       20,
						Usage:       "how many openings to print, 0 is all",
						Destination: &top,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c, err := configure(wordsFile, count, workers, progress)
					if err != nil {
						return err
					}
					return first(c, top)
				},
			},
			{
				Name: "sim",
				Usage: `sim [secret]...
				Play the solver to completion against each secret and report the
				guess count distribution. With no secrets, simulate every word.`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c, err := configure(wordsFile, count, workers, progress)
					if err != nil {
						return err
					}
					return sim(c, noCache, cmd.Args().Slice())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl failed")
	}
}
