package main

import (
	"fmt"
	"io"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/firework-quiz/asset"
	"github.com/lixenwraith/firework-quiz/audio"
	"github.com/lixenwraith/firework-quiz/config"
	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/logger"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/question"
)

type options struct {
	configPath string
	debug      bool
	questions  string
	seed       int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "firework-quiz",
		Short:        "Multiple-choice quiz in the terminal, with fireworks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./config/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write a debug log under log_dir")
	addPlayFlags(root, opts)

	play := &cobra.Command{
		Use:   "play",
		Short: "Start the quiz (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	addPlayFlags(play, opts)

	check := &cobra.Command{
		Use:   "check",
		Short: "Load the question bank and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			bank := question.Load(question.SourceFor(cfg.Questions.Path, log), log)
			return printSummary(cmd.OutOrStdout(), cfg.Questions.Path, bank)
		},
	}
	check.Flags().StringVar(&opts.questions, "questions", "", "question bank file (CSV or YAML)")

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter config and sample question bank",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := asset.WriteStarter(dir, force)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to do, use --force to overwrite")
			}
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	root.AddCommand(play, check, initCmd)
	return root
}

func addPlayFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.questions, "questions", "", "question bank file (CSV or YAML)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")
}

// setup loads configuration, applies flag overrides and builds the logger
func setup(cmd *cobra.Command, opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
	if opts.questions != "" {
		cfg.Questions.Path = opts.questions
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Game.Seed = opts.seed
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, log, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", zap.Int64("seed", seed), zap.String("questions", cfg.Questions.Path))

	bank := question.Load(question.SourceFor(cfg.Questions.Path, log), log)

	sounds := audio.NewSoundManager(audioConfig(cfg), log)
	if err := sounds.Initialize(); err != nil {
		log.Info("continuing without audio", zap.Error(err))
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	g := newGame(screen, cfg, bank, sounds, rand.New(rand.NewSource(seed)), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return g.Run(ctx)
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}

// printSummary writes the bank size, the session size and the answer distribution
func printSummary(w io.Writer, path string, bank *question.Bank) error {
	source := path
	if bank.IsFallback() {
		source = "built-in fallback"
	}

	counts := make(map[question.Label]int, len(question.Labels))
	for _, r := range bank.Records() {
		counts[r.Correct]++
	}

	if _, err := fmt.Fprintf(w, "source:    %s\nquestions: %d\nsession:   %d\n",
		source, bank.Len(), bank.SessionSize(parameter.SessionSize)); err != nil {
		return err
	}
	for _, l := range question.Labels {
		if _, err := fmt.Fprintf(w, "correct %s: %d\n", l, counts[l]); err != nil {
			return err
		}
	}
	return nil
}
