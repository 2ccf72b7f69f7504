package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"slotbattle/internal/combat"
	"slotbattle/internal/config"
	"slotbattle/internal/util"
)

func main() {
	settings, err := config.ParseSettings()
	if err != nil {
		panic(err)
	}
	var cfgDir, out, level string
	var seed int64
	var n, workers, maxTicks int
	var saveLog, watch bool
	flag.StringVar(&cfgDir, "config", settings.ConfigDir, "config dir (roster.yaml, tuning.toml)")
	flag.StringVar(&out, "out", settings.Out, "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", settings.Seed, "seed")
	flag.IntVar(&n, "n", settings.Runs, "number of simulations")
	flag.IntVar(&workers, "workers", settings.Workers, "batch workers")
	flag.IntVar(&maxTicks, "max-ticks", settings.MaxTicks, "tick budget per combat")
	flag.StringVar(&level, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	flag.BoolVar(&saveLog, "log", settings.Record, "save full event log when n==1")
	flag.BoolVar(&watch, "watch", false, "re-run the single simulation whenever the config changes")
	flag.Parse()

	logger, err := newLogger(level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if n <= 1 {
		runSingle(logger, cfgDir, out, seed, maxTicks, saveLog)
		if watch {
			watchAndRun(logger, cfgDir, func() { runSingle(logger, cfgDir, out, seed, maxTicks, saveLog) })
		}
		return
	}
	runBatch(logger, cfgDir, out, seed, n, config.ClampWorkers(workers), maxTicks)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = false
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg.Build()
}

func runSingle(logger *zap.Logger, cfgDir, out string, seed int64, maxTicks int, saveLog bool) {
	roster, tuning, err := config.LoadAll(cfgDir)
	if err != nil {
		logger.Error("load config", zap.Error(err))
		return
	}
	state, err := combat.NewCombat(roster, tuning, util.New(seed))
	if err != nil {
		logger.Error("build combat", zap.Error(err))
		return
	}
	res, err := combat.RunSingle(state, combat.RunOptions{
		Seed: seed, MaxTicks: maxTicks, Record: saveLog, Log: logger,
	})
	if err != nil {
		logger.Error("simulate", zap.Error(err))
		return
	}
	if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Single simsvc finished. Outcome=%s, rounds=%d, ticks=%d -> %s\n", res.Outcome, res.Rounds, res.Ticks, out)
}

func watchAndRun(logger *zap.Logger, cfgDir string, run func()) {
	w, err := config.NewWatcher(cfgDir)
	if err != nil {
		panic(err)
	}
	defer func() { _ = w.Close() }()
	logger.Info("watching config", zap.String("dir", cfgDir))
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Info("config changed", zap.String("file", filepath.Base(name)))
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch", zap.Error(err))
		}
	}
}

func runBatch(logger *zap.Logger, cfgDir, out string, seed int64, n, workers, maxTicks int) {
	roster, tuning, err := config.LoadAll(cfgDir)
	if err != nil {
		panic(err)
	}

	type stat struct {
		Wins, Losses, Draws, Failed int
		SumTicks, SumRounds         int
		DamageBy                    map[string]int
		Activations                 map[string]int
	}
	st := stat{DamageBy: map[string]int{}, Activations: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	quiet := zap.NewNop()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runSeed := util.RunSeed(seed, i)
				state, err := combat.NewCombat(roster, tuning, util.New(runSeed))
				var res combat.SimResult
				if err == nil {
					res, err = combat.RunSingle(state, combat.RunOptions{Seed: runSeed, MaxTicks: maxTicks, Log: quiet})
				}

				mu.Lock()
				if err != nil {
					st.Failed++
					logger.Warn("run failed", zap.Int("run", i), zap.Int64("seed", runSeed), zap.Error(err))
					mu.Unlock()
					continue
				}
				switch res.Outcome {
				case combat.OutcomeVictory:
					st.Wins++
				case combat.OutcomeDefeat:
					st.Losses++
				default:
					st.Draws++
				}
				st.SumTicks += res.Ticks
				st.SumRounds += res.Rounds
				for k, v := range res.DamageBy {
					st.DamageBy[k] += v
				}
				for k, v := range res.Activations {
					st.Activations[k] += v
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	done := n - st.Failed
	avg := func(sum int) float64 {
		if done == 0 {
			return 0
		}
		return float64(sum) / float64(done)
	}
	summary := map[string]any{
		"runs":        n,
		"failed":      st.Failed,
		"win_rate":    float64(st.Wins) / float64(n),
		"losses":      st.Losses,
		"draws":       st.Draws,
		"avg_ticks":   avg(st.SumTicks),
		"avg_rounds":  avg(st.SumRounds),
		"damage_by":   st.DamageBy,
		"activations": st.Activations,
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}
