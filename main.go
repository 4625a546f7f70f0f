package main

import (
	"bytes"
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type _App struct {
	cfg        *viper.Viper
	log        logr.Logger
	configFile string
}

type (
	_SensorsAnswer struct {
		Puzzle   string `yaml:"puzzle"`
		Row      int    `yaml:"row"`
		Excluded int    `yaml:"excluded"`
		Max      int    `yaml:"max,omitempty"`
		Tuning   int    `yaml:"tuning,omitempty"`
	}

	_RocksAnswer struct {
		Puzzle string `yaml:"puzzle"`
		Count  int    `yaml:"count"`
		Height int    `yaml:"height"`
	}

	_ElvesAnswer struct {
		Puzzle string `yaml:"puzzle"`
		Elves  int    `yaml:"elves"`
		Rounds int    `yaml:"rounds"`
		Moves  int    `yaml:"moves"`
	}
)

func main() {
	os.Exit(_main())
}

func _main() int {
	cmd := _newApp().newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		eprintln(cmd, "aoc2022:", err)
		return 1
	}
	return 0
}

func _newApp() *_App {
	return &_App{cfg: _newConfig(), log: logr.Discard()}
}

func (a *_App) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aoc2022",
		Short: "aoc2022 solves sensor, falling rock and elf puzzles.",
		Long: `aoc2022 reads a puzzle input from a file, or from stdin when the file is
omitted or "-", and prints the answer.

Settings may also come from ./aoc2022.yaml (or --config) and from
AOC2022_* environment variables, e.g. AOC2022_SENSORS_ROW=10.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./aoc2022.yaml)")
	flags.CountP("verbose", "v", "log progress to stderr; repeat for more detail")
	flags.StringP("output", "o", _defaultOutput, "answer format: text or yaml")
	flags.Int("workers", _defaultWorkers, "maximum number of goroutines scanning rows")
	_bindFlags(a.cfg, flags, "", "verbose", "output", "workers")

	cmd.AddCommand(
		a.newSensorsCmd(),
		a.newRocksCmd(),
		a.newElvesCmd(),
	)
	return cmd
}

func (a *_App) setup(cmd *cobra.Command) error {
	loaded, err := _loadConfig(a.cfg, a.configFile)
	if err != nil {
		return err
	}

	stdr.SetVerbosity(a.cfg.GetInt("verbose"))
	a.log = stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)).WithName(cmd.Name())
	if loaded {
		a.log.V(1).Info("config loaded", "file", a.cfg.ConfigFileUsed())
	}

	switch format := a.cfg.GetString("output"); format {
	case "text", "yaml":
	default:
		return errorf("unknown output format %q", format)
	}
	return nil
}

func (a *_App) context(cmd *cobra.Command) context.Context {
	return logr.NewContext(cmd.Context(), a.log)
}

func (a *_App) report(cmd *cobra.Command, v interface{}, answers ...int) error {
	return _report(cmd, a.cfg.GetString("output"), v, answers...)
}

func (a *_App) newSensorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensors [input]",
		Short: "count positions on a row where no beacon can be",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSensors,
	}
	flags := cmd.Flags()
	flags.Int("row", _defaultRow, "row to count excluded positions on")
	flags.Bool("tuning", false, "also locate the distress beacon and print its tuning frequency")
	flags.Int("max", _defaultLimit, "largest coordinate searched for the distress beacon")
	_bindFlags(a.cfg, flags, "sensors", "row", "tuning", "max")
	return cmd
}

func (a *_App) runSensors(cmd *cobra.Command, args []string) error {
	data, err := _readInput(cmd, args)
	if err != nil {
		return err
	}
	sensors, err := ParseSensors(bytes.NewReader(data))
	if err != nil {
		return err
	}

	row := a.cfg.GetInt("sensors.row")
	answer := _SensorsAnswer{
		Puzzle:   "sensors",
		Row:      row,
		Excluded: BeaconExclusion(sensors, row),
	}
	a.log.V(1).Info("excluded positions counted", "sensors", len(sensors), "row", row)
	answers := []int{answer.Excluded}

	if a.cfg.GetBool("sensors.tuning") {
		limit := a.cfg.GetInt("sensors.max")
		if limit <= 0 {
			return enew("--max must be positive")
		}
		tuning, err := TuningFrequency(a.context(cmd), sensors, limit, a.cfg.GetInt("workers"))
		if err != nil {
			return err
		}
		answer.Max, answer.Tuning = limit, tuning
		answers = append(answers, tuning)
	}

	return a.report(cmd, answer, answers...)
}

func (a *_App) newRocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rocks [input]",
		Short: "measure the tower built by falling rocks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runRocks,
	}
	flags := cmd.Flags()
	flags.Int("count", _defaultRocks, "number of rocks to drop")
	flags.Bool("draw", false, "print the chamber before the answer")
	_bindFlags(a.cfg, flags, "rocks", "count", "draw")
	return cmd
}

func (a *_App) runRocks(cmd *cobra.Command, args []string) error {
	data, err := _readInput(cmd, args)
	if err != nil {
		return err
	}

	n := a.cfg.GetInt("rocks.count")
	if a.cfg.GetBool("rocks.draw") {
		jets, err := NewJets(data)
		if err != nil {
			return err
		}
		c := NewChamber(jets)
		for c.Dropped() < n {
			c.Drop()
		}
		for _, line := range c.Draw(nil, Point{}) {
			fprintln(cmd.OutOrStdout(), line)
		}
	}

	height, err := TowerHeight(data, n)
	if err != nil {
		return err
	}
	a.log.V(1).Info("tower measured", "rocks", n, "height", height)

	return a.report(cmd, _RocksAnswer{Puzzle: "rocks", Count: n, Height: height}, height)
}

func (a *_App) newElvesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elves [input]",
		Short: "spread elves out and count how often they moved",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runElves,
	}
	flags := cmd.Flags()
	flags.Int("rounds", _defaultRounds, "number of rounds to run")
	_bindFlags(a.cfg, flags, "elves", "rounds")
	return cmd
}

func (a *_App) runElves(cmd *cobra.Command, args []string) error {
	data, err := _readInput(cmd, args)
	if err != nil {
		return err
	}
	m, err := ParseElves(bytes.NewReader(data))
	if err != nil {
		return err
	}

	rounds := a.cfg.GetInt("elves.rounds")
	elves, total := m.Elves, 0
	for i := 0; i < rounds; i++ {
		var moved int
		elves, moved = Round(elves, Directions)
		total += moved
		a.log.V(2).Info("round done", "round", i+1, "moved", moved)
	}

	answer := _ElvesAnswer{Puzzle: "elves", Elves: len(elves), Rounds: rounds, Moves: total}
	return a.report(cmd, answer, total)
}
