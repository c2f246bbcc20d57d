// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/docflow"
	"github.com/poiesic/docflow/ai"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/pipeline"
	"github.com/poiesic/docflow/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docflow",
		Usage: "Document-processing pipeline orchestrator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API and pipeline workers",
				Action: serveCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "docflow-data",
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on",
						Value: ":8080",
					},
					&cli.IntFlag{
						Name:  "max-jobs",
						Usage: "Maximum concurrently running jobs",
						Value: 4,
					},
				),
			},
			{
				Name:      "process",
				Usage:     "Process a single document with an in-memory store and print the result",
				ArgsUsage: "<file>",
				Action:    processCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "workspace",
						Usage: "Workspace the document belongs to",
						Value: "local",
					},
				),
			},
			{
				Name:  "reviews",
				Usage: "Work with the human-review queue",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List review tasks",
						Action: reviewsListCommand,
						Flags: []cli.Flag{
							dbFlag(),
							&cli.StringFlag{
								Name:  "status",
								Usage: "Filter by status (pending, completed, escalated)",
							},
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Maximum number of tasks to list",
								Value: 50,
							},
						},
					},
					{
						Name:      "complete",
						Usage:     "Record a decision on a review task",
						ArgsUsage: "<task-id>",
						Action:    reviewsCompleteCommand,
						Flags: []cli.Flag{
							dbFlag(),
							&cli.StringFlag{
								Name:     "decision",
								Usage:    "Decision (approve, reject, needs_improvement, escalate)",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "reviewer",
								Usage: "Reviewer identifier",
							},
							&cli.StringFlag{
								Name:  "notes",
								Usage: "Free-form reviewer notes",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "extractor-host",
			Usage: "Extraction service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "extractor-model",
			Usage: "Extraction model name",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "docs",
			Usage: "Base directory documents are fetched from",
			Value: ".",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithExtractorHost(c.String("extractor-host")),
		ai.WithExtractorModel(c.String("extractor-model")),
	)
}

func serveCommand(c *cli.Context) error {
	engine, err := docflow.NewEngine(c.String("db"), docflow.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	config := pipeline.DefaultConfig()
	config.MaxConcurrentJobs = c.Int("max-jobs")

	orchestrator, err := engine.NewOrchestrator(
		docflow.NewFileSource(c.String("docs")),
		config,
		pipeline.WithMonitor(pipeline.NewLogMonitor(slog.Default())),
	)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orchestrator.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pick interrupted jobs back up before accepting new work.
	resumed, err := orchestrator.ResumeAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume jobs: %w", err)
	}
	if resumed > 0 {
		slog.Info("resumed jobs from previous run", "count", resumed)
	}

	server, err := engine.NewServer(orchestrator)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:    c.String("listen"),
		Handler: server,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func processCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one document path")
	}
	path := c.Args().First()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	engine, err := docflow.NewEngine("",
		docflow.WithAIConfig(aiConfigFromFlags(c)),
		docflow.WithInMemoryStore(),
	)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	orchestrator, err := engine.NewOrchestrator(
		docflow.NewFileSource(filepath.Dir(absPath)),
		nil,
		pipeline.WithMonitor(pipeline.NewLogMonitor(slog.Default())),
	)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orchestrator.Release()

	ctx := c.Context
	workspace := c.String("workspace")
	job, err := orchestrator.Submit(ctx, pipeline.SubmitRequest{
		Workspace: workspace,
		Document: core.DocumentRef{
			Workspace: workspace,
			URI:       filepath.Base(absPath),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to submit job: %w", err)
	}

	final, err := waitForJob(ctx, engine.Registry(), job.Id)
	if err != nil {
		return err
	}
	printJob(final)

	if final.Status != core.JobCompleted {
		return fmt.Errorf("job finished %s", final.Status)
	}
	return nil
}

func waitForJob(ctx context.Context, registry *pipeline.Registry, jobID core.ID) (*core.Job, error) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		job, err := registry.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		switch job.Status {
		case core.JobCompleted, core.JobFailed, core.JobCancelled:
			return job, nil
		}

		progress := job.Progress()
		fmt.Fprintf(os.Stderr, "\r%-12s %d/%d stages (%.0f%%)   ",
			progress.CurrentStage, progress.CompletedStages, progress.TotalStages, progress.Percentage)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func printJob(job *core.Job) {
	fmt.Fprintln(os.Stderr)
	fmt.Printf("job %d: %s\n", job.Id, job.Status)
	for _, stage := range job.Stages {
		line := fmt.Sprintf("  %-8s %-10s attempts=%d", stage.Name, stage.Status, stage.Attempts)
		if d := stage.Duration(); d > 0 {
			line += fmt.Sprintf(" duration=%s", d.Round(time.Millisecond))
		}
		if stage.Error != "" {
			line += fmt.Sprintf(" error=%q", stage.Error)
		}
		fmt.Println(line)
		for name, value := range stage.Metrics {
			fmt.Printf("    %s=%.2f\n", name, value)
		}
	}
}

func reviewsListCommand(c *cli.Context) error {
	engine, err := docflow.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	filter := storage.ReviewTaskFilter{Limit: c.Int("limit")}
	if raw := c.String("status"); raw != "" {
		switch raw {
		case "pending":
			filter.Status = core.ReviewPending
		case "completed":
			filter.Status = core.ReviewCompleted
		case "escalated":
			filter.Status = core.ReviewEscalated
		default:
			return fmt.Errorf("unknown review status %q", raw)
		}
	}

	tasks, err := engine.Stores().Reviews.ListTasks(c.Context, filter)
	if err != nil {
		return fmt.Errorf("failed to list review tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("no review tasks")
		return nil
	}
	for _, task := range tasks {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\tentity=%d score=%.2f\n",
			task.Id, task.Status, task.Priority, task.ReviewType,
			task.EntityType, task.EntityId, task.Assessment.OverallScore)
	}
	return nil
}

func reviewsCompleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one task id")
	}
	var taskID uint64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &taskID); err != nil {
		return fmt.Errorf("invalid task id %q", c.Args().First())
	}
	decision, ok := core.ParseReviewDecision(c.String("decision"))
	if !ok {
		return fmt.Errorf("unknown decision %q", c.String("decision"))
	}

	engine, err := docflow.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	dispatcher, err := engine.NewDispatcher()
	if err != nil {
		return err
	}
	task, err := dispatcher.Complete(c.Context, core.ID(taskID), decision, c.String("reviewer"), c.String("notes"))
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	fmt.Printf("task %d: %s (%s)\n", task.Id, task.Status, task.Decision)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
