package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/esolano/thermofan/internal/config"
	"github.com/esolano/thermofan/internal/metrics"
	"github.com/esolano/thermofan/internal/report"
	"github.com/esolano/thermofan/internal/sim"
	"github.com/esolano/thermofan/internal/viz"
)

var (
	configFile string

	dt       float64
	duration float64
	load     float64
	preset   string
	pidOn    bool
	kp       float64
	ki       float64
	kd       float64
	setpoint float64

	writeReport bool
	csvPath     string
	reportDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thermofan",
		Short: "closed-loop fan cooling simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (seconds)")
	runCmd.Flags().Float64Var(&load, "load", 0, "load percentage")
	runCmd.Flags().StringVar(&preset, "preset", "", "load preset (idle/office/gaming/render)")
	runCmd.Flags().BoolVar(&pidOn, "pid", true, "enable closed-loop control")
	runCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "pid kp")
	runCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "pid ki")
	runCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "pid kd")
	runCmd.Flags().Float64Var(&setpoint, "setpoint", config.DefaultSetpoint, "target temperature")
	runCmd.Flags().BoolVar(&writeReport, "report", false, "write a PDF report")
	runCmd.Flags().StringVar(&reportDir, "report-dir", report.DefaultDir, "report output directory")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write the trace to a CSV file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list load presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				loadPct, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f%%\n", name, loadPct)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override the config file.
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("pid") {
		cfg.PIDEnabled = pidOn
	}
	if cmd.Flags().Changed("kp") {
		cfg.PID.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.PID.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.PID.Kd = kd
	}
	if cmd.Flags().Changed("setpoint") {
		cfg.PID.Setpoint = setpoint
	}
	if preset != "" {
		presetLoad, ok := config.GetPreset(preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.InitialLoad = presetLoad
	}
	if cmd.Flags().Changed("load") {
		cfg.InitialLoad = load
	}

	session := sim.NewSession(cfg.NewPlant, cfg.NewPID())
	session.SetPIDEnabled(cfg.PIDEnabled)

	runner := sim.NewRunner(session)
	duty := metrics.NewFanDuty()
	band := metrics.NewTimeInBand(cfg.PID.Setpoint, 5.0)
	runner.AddMetric(duty)
	runner.AddMetric(band)

	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	printSummary(cfg, result)

	if csvPath != "" {
		if err := report.WriteCSV(csvPath, result.Times, result.Temps, result.Fans); err != nil {
			return err
		}
		fmt.Printf("\ntrace written: %s\n", csvPath)
	}

	if writeReport {
		path, err := report.Generate(reportDir, report.Data{
			GeneratedAt: time.Now(),
			Duration:    result.Elapsed,
			PIDEnabled:  cfg.PIDEnabled,
			Damaged:     result.Damaged,
			FinalTemp:   result.Temps[len(result.Temps)-1],
			Setpoint:    cfg.PID.Setpoint,
			Kp:          cfg.PID.Kp,
			Ki:          cfg.PID.Ki,
			Kd:          cfg.PID.Kd,
			OutputMin:   cfg.PID.OutputMin,
			OutputMax:   cfg.PID.OutputMax,
			IntMin:      cfg.PID.IntMin,
			IntMax:      cfg.PID.IntMax,
			Times:       result.Times,
			Temps:       result.Temps,
			Fans:        result.Fans,
		})
		if err != nil {
			return err
		}
		fmt.Printf("report written: %s\n", path)
	}
	return nil
}

func printSummary(cfg *config.Config, result *sim.Result) {
	temps := metrics.NewSeriesStats("temperature", len(result.Temps), metrics.Temperature)
	for _, v := range result.Temps {
		temps.Add(v)
	}

	fmt.Println(asciigraph.Plot(result.Temps,
		asciigraph.Height(10), asciigraph.Width(64), asciigraph.Caption("Temperature °C")))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "simulated\t%.1fs (%d samples)\n", result.Elapsed, len(result.Temps))
	fmt.Fprintf(w, "load\t%.0f%%\n", cfg.InitialLoad)
	fmt.Fprintf(w, "pid\t%v\n", cfg.PIDEnabled)
	fmt.Fprintf(w, "final temp\t%.1f°C\n", result.Temps[len(result.Temps)-1])
	fmt.Fprintf(w, "temp min/max/avg\t%.1f / %.1f / %.1f °C\n", temps.Min(), temps.Max(), temps.Mean())
	fmt.Fprintf(w, "mean fan duty\t%.1f%%\n", result.Metrics["fan_duty"])
	fmt.Fprintf(w, "time in band\t%.0f%%\n", result.Metrics["time_in_band"]*100)
	fmt.Fprintf(w, "damaged\t%v\n", result.Damaged)
	w.Flush()
}
