package main

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"mysterystays/client"
	"mysterystays/config"
	"mysterystays/demo"
	"mysterystays/forms"
	"mysterystays/services/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnv()

	app := &cli.App{
		Name:  "demo",
		Usage: "drive the Mystery Stays backend from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "backend base URL",
				Value:   config.GetEnv("BACKEND_URL", config.DefaultBackendURL),
				EnvVars: []string{"BACKEND_URL"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: config.GetEnv("LOG_LEVEL", "info"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
				Value: client.DefaultTimeout,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "one-click demo: add a property, register a matching user, book and reveal",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Usage: "random seed (default: current time)"},
				},
				Action: runDemo,
			},
			formCommand(forms.FormScan, "scan", "scan Airbnb for mystery stay candidates", "city", "check_in", "check_out"),
			formCommand(forms.FormAddProperty, "add-property", "list a property at 50% off",
				"name", "original_price", "amenities", "bedrooms", "city", "country"),
			formCommand(forms.FormRegisterPreferences, "register", "register a user's preferences",
				"user_id", "amenities", "price_max", "bedrooms"),
			formCommand(forms.FormFindMatches, "match", "find a user's matches", "user_id"),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newClient(cCtx *cli.Context) *client.Client {
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cCtx.String("log-level")))
	return client.New(cCtx.String("backend"),
		client.WithLogger(appLogger),
		client.WithHTTPClient(&http.Client{Timeout: cCtx.Duration("timeout")}),
	)
}

func runDemo(cCtx *cli.Context) error {
	seed := cCtx.Int64("seed")
	if !cCtx.IsSet("seed") {
		seed = time.Now().UnixNano()
	}

	orchestrator := demo.NewOrchestrator(newClient(cCtx), demo.NewRandomGenerator(seed))
	result, err := orchestrator.Run(cCtx.Context)
	if renderErr := result.Render(cCtx.App.Writer); renderErr != nil {
		return renderErr
	}
	if err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

// formCommand builds a sub-command whose flags are the form's field names.
func formCommand(form forms.Form, name, usage string, fields ...string) *cli.Command {
	flags := make([]cli.Flag, 0, len(fields))
	for _, field := range fields {
		flags = append(flags, &cli.StringFlag{Name: field})
	}
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			values := url.Values{}
			for _, field := range fields {
				values.Set(field, cCtx.String(field))
			}
			out, err := forms.NewDispatcher(newClient(cCtx)).Dispatch(cCtx.Context, form, values)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cCtx.App.Writer, out)
			return err
		},
	}
}
