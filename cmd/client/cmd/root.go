// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"workoutlog/internal/app/client"
	"workoutlog/internal/app/client/config"
	"workoutlog/internal/utils/logger"
)

var (
	cfg         *config.Config
	log         *slog.Logger
	app         *client.App
	debug       bool
	serverURL   string
	fallbackURL string
)

var rootCmd = &cobra.Command{
	Use:   "workoutlog",
	Short: "Workout Log - клиент журнала тренировок",
	Long: `Workout Log is a client for a remote workout journal.

Records live on the server; the client pages through them, keeps the
aggregate stats in sync and validates new entries before they are sent.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if fallbackURL != "" {
		cfg.FallbackAddress = fallbackURL
	}
	if debug {
		cfg.LogLevel = "debug"
		cfg.Env = "local"
	}

	log = logger.New(cfg.Env)

	app = client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), client.AppContextKey, app))

	return nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "primary server address (host:port)")
	rootCmd.PersistentFlags().StringVar(&fallbackURL, "fallback", "", "fallback server address (host:port)")

	// Команды добавляются в init() соответствующих файлов
}
