package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/propdesk-backend/internal/app"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/seed"
)

func main() {
	planPath := flag.String("plan", "", "path to a YAML seed plan (defaults to one of everything)")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	plan := seed.DefaultPlan()
	if *planPath != "" {
		plan, err = seed.LoadPlanFile(*planPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load seed plan: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	res, err := seed.NewSeeder(a.Services.Actions, a.Log).Run(ctx, plan)
	if err != nil {
		a.Log.Error("Seeding failed", "error", err)
		a.Close()
		os.Exit(1)
	}
	for _, k := range entity.Kinds() {
		fmt.Printf("%-16s %d\n", k.String(), res.Count(k))
	}
}
