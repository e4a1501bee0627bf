// Command linkedlists runs linked list scenarios, either a single operation
// given on the command line or a JSON file of scenarios, and prints the
// resulting lists.
//
//	linkedlists -kind doubly -values '[5,1,3,2,4]' -op partitionList -args '[3]'
//	linkedlists -file scenarios.json -parallelism 4
//	linkedlists -serve :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Invicton-Labs/go-linkedlists/genjson"
	"github.com/Invicton-Labs/go-linkedlists/log"
	"github.com/Invicton-Labs/go-linkedlists/scenario"
	"github.com/Invicton-Labs/go-linkedlists/server"
	"github.com/gin-gonic/gin"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

type config struct {
	kind        string
	values      string
	op          string
	args        string
	file        string
	parallelism int
	dev         bool
	level       string
	serve       string
	maxBatch    int
}

func parseConfig() config {
	cfg := config{}
	flag.StringVar(&cfg.kind, "kind", string(scenario.Singly), "list kind: singly or doubly")
	flag.StringVar(&cfg.values, "values", "[]", "JSON array of initial values")
	flag.StringVar(&cfg.op, "op", "", "operation to apply, one of: "+strings.Join(scenario.Operations(), ", "))
	flag.StringVar(&cfg.args, "args", "[]", "JSON array of operation arguments")
	flag.StringVar(&cfg.file, "file", "", "JSON file of scenarios; overrides -kind, -values, -op and -args")
	flag.IntVar(&cfg.parallelism, "parallelism", 0, "maximum number of scenarios run at once (0 for no limit)")
	flag.StringVar(&cfg.serve, "serve", envOr("LINKEDLISTS_LISTEN", ""), "serve the HTTP API on this address instead of running scenarios")
	flag.IntVar(&cfg.maxBatch, "max-batch", 100, "maximum number of scenarios in one HTTP request (0 for no limit)")
	flag.BoolVar(&cfg.dev, "dev", envBool("LINKEDLISTS_DEV"), "human-readable development logging")
	flag.StringVar(&cfg.level, "level", envOr("LINKEDLISTS_LOG_LEVEL", "info"), "log level")
	flag.Parse()
	return cfg
}

func envOr(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func loadScenarios(cfg config) ([]scenario.Scenario, stackerr.Error) {
	if cfg.file != "" {
		data, err := os.ReadFile(cfg.file)
		if err != nil {
			return nil, stackerr.Wrap(err)
		}
		return scenario.Parse(data)
	}

	values, err := genjson.Unmarshal[[]int]([]byte(cfg.values))
	if err != nil {
		return nil, stackerr.Errorf("invalid -values: %w", err)
	}
	s := scenario.Scenario{
		Name: "command-line",
		Kind: scenario.Kind(cfg.kind),
		Seed: values,
	}
	if cfg.op != "" {
		args, err := genjson.Unmarshal[[]int]([]byte(cfg.args))
		if err != nil {
			return nil, stackerr.Errorf("invalid -args: %w", err)
		}
		s.Steps = []scenario.Step{{Op: cfg.op, Args: args}}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []scenario.Scenario{s}, nil
}

func run(ctx context.Context, cfg config) stackerr.Error {
	scenarios, err := loadScenarios(cfg)
	if err != nil {
		return err
	}
	results, err := scenario.RunAll(ctx, scenarios, cfg.parallelism)
	for _, r := range results {
		if r.Name == "" {
			continue
		}
		fmt.Printf("== %s (%s)\n", r.Name, r.Kind)
		for _, sr := range r.Steps {
			switch {
			case sr.Error != "":
				fmt.Printf("%s -> error: %s\n", sr.Step, sr.Error)
			case sr.Output != "":
				fmt.Printf("%s -> %s\n", sr.Step, sr.Output)
			default:
				fmt.Printf("%s\n", sr.Step)
			}
		}
		fmt.Println(r.Rendered)
	}
	return err
}

func serve(cfg config, logger log.Logger) stackerr.Error {
	if !cfg.dev {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	server.RegisterRouting(engine, server.Config{
		Parallelism:  cfg.parallelism,
		MaxScenarios: cfg.maxBatch,
		Logger:       logger,
	})
	engine.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{}) })

	logger.Infow("Listening", "address", cfg.serve)
	if err := engine.Run(cfg.serve); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}

func main() {
	cfg := parseConfig()

	level, lerr := zapcore.ParseLevel(cfg.level)
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "invalid log level `%s`: %v\n", cfg.level, lerr)
		os.Exit(2)
	}
	log.InitDefault(log.NewInput{
		Name:          "linkedlists",
		Level:         level,
		IsDevelopment: cfg.dev,
		InitialFields: map[string]any{
			"invocation_id": uuid.New().String(),
		},
	})
	logger := log.Default()
	defer logger.Sync()

	var err stackerr.Error
	if cfg.serve != "" {
		err = serve(cfg, logger)
	} else {
		err = run(log.LogContext(context.Background(), logger), cfg)
	}
	if err != nil {
		logger.Error(err)
		logger.Sync()
		os.Exit(1)
	}
}
