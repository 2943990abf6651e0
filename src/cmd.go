package main

import (
	"context"
	"log"

	"onboarding/src/boot"
	"onboarding/src/config"
	"onboarding/src/db"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:          "onboarding",
	Short:        "Employee onboarding API",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and seed the fixed roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := openDatabase(); err != nil {
			return err
		}
		log.Println("Migration complete")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, projects and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gdb, err := openDatabase()
		if err != nil {
			return err
		}
		return boot.SeedDemo(gdb)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	gdb, err := db.Open(cfg.DatabaseDriver, cfg.DSN)
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		return nil, nil, err
	}
	if err := boot.InitDb(gdb); err != nil {
		return nil, nil, err
	}
	return cfg, gdb, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	initLogger()
	cfg, gdb, err := openDatabase()
	if err != nil {
		return err
	}
	a, err := newApp(context.Background(), cfg, gdb)
	if err != nil {
		log.Printf("Error initializing server: %s\n", err.Error())
		return err
	}
	router := buildRouter(a)
	log.Printf("Listening on :%s\n", cfg.Port)
	return router.Run(":" + cfg.Port)
}
