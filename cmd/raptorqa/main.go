package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	internalcli "github.com/raptortest/qa-automation/internal/cli"
	"github.com/raptortest/qa-automation/internal/config"
	"github.com/raptortest/qa-automation/internal/database"
	"github.com/raptortest/qa-automation/internal/repository"
	"github.com/raptortest/qa-automation/internal/services"
)

var version = "0.1.0"

// userRepository picks Postgres when it is configured and memory otherwise
func userRepository() (services.UserRepository, func(), error) {
	if !config.PostgresEnabled(os.Getenv) {
		log.Println("POSTGRES_HOSTNAME not set, keeping users in memory")
		return repository.NewMemoryUserRepository(), func() {}, nil
	}

	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("missing required Postgres configuration: %w", err)
	}
	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return repository.NewUserRepository(db), func() { db.Close() }, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the RaptorTest fixture application",
		Action: func(c *cli.Context) error {
			repo, closeRepo, err := userRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			deps, err := internalcli.BuildServerDependencies(config.LoadServerConfig(os.Getenv), repo, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return internalcli.RunServe(ctx, deps)
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the UI regression scenarios",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the properties file",
				Value:   config.DefaultPath,
				EnvVars: []string{"RAPTORQA_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "app-url",
				Usage: "override app.url from the properties file",
			},
			&cli.BoolFlag{
				Name:    "headless",
				Usage:   "run the browser without a window",
				EnvVars: []string{"HEADLESS"},
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "number of scenarios to run at once",
				Value:   1,
			},
			&cli.StringSliceFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "only run scenarios matching this glob (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logrus level: debug, info, warn or error",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logger := logrus.New()
			logger.SetLevel(level)

			_, err = internalcli.RunScenarios(c.Context, internalcli.RunOptions{
				ConfigPath: c.String("config"),
				AppURL:     c.String("app-url"),
				Headless:   c.Bool("headless"),
				Parallel:   c.Int("parallel"),
				Patterns:   c.StringSlice("scenario"),
				Out:        c.App.Writer,
				Log:        logger,
			})
			return err
		},
	}
}

// ListCommand returns the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available scenarios in run order",
		Action: func(c *cli.Context) error {
			internalcli.ListScenarios(c.App.Writer)
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "raptorqa",
		Usage:   "RaptorTest UI regression suite",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			RunCommand(),
			ListCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
