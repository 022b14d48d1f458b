package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniblog/internal/config"
	"miniblog/internal/logger"
	"miniblog/internal/services"
	"miniblog/internal/session"
	"miniblog/internal/store"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:           "blogdesk",
		Short:         "Personal blogging client",
		Long:          "blogdesk is a line-mode shell over the miniblog data layer:\nregister, log in, write and manage posts, comment and react.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blogdesk:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, reading env vars from system")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, flush := logger.New(cfg.Log)
	defer flush()

	db, err := store.Open(cfg.DB, log)
	if err != nil {
		log.Error("database init failed", zap.Error(err))
		return err
	}

	svc := services.New(db, log)
	sess := session.New()

	sh := newShell(svc, sess, cmd.InOrStdin(), cmd.OutOrStdout())
	return sh.run()
}
