// aiquant runs the agent company: message bus, scheduler, tool router,
// governance and the operator HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/NoAme666/aiquant/pkg/api"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/database"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/runtime"
	"github.com/NoAme666/aiquant/pkg/tools"
	"github.com/NoAme666/aiquant/pkg/tools/sim"
	"github.com/NoAme666/aiquant/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	watch := flag.Bool("watch", true, "Hot-reload keywords and permissions on file change")
	flag.Parse()

	// Load .env from the config directory; absence is fine.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting aiquant",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Configuration.
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Persistence. Optional: without DB_PASSWORD the company runs with
	// in-memory budget accounts and audit trail.
	var budgetStore *database.Store
	var dbClient *database.Client
	if os.Getenv("DB_PASSWORD") != "" {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		budgetStore = database.NewStore(dbClient)
		slog.Info("Connected to PostgreSQL database")
	} else {
		slog.Warn("DB_PASSWORD not set, running without persistence")
	}

	// 3. LLM client. grpc.NewClient dials lazily; the first Think call
	// establishes the connection. The stub keeps offline runs working.
	var llmClient llm.Client
	if addr := os.Getenv("MODEL_SERVICE_ADDR"); addr != "" {
		grpcClient, err := llm.NewGRPCClient(addr, llm.Options{Model: os.Getenv("MODEL_NAME")})
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", addr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		llmClient = grpcClient
		slog.Info("LLM client initialized", "addr", addr)
	} else {
		llmClient = llm.NewStubClient("ACK")
		slog.Warn("MODEL_SERVICE_ADDR not set, using stub LLM client")
	}

	// 4. Runtime with simulated tool providers.
	opts := runtime.Options{
		LLM: llmClient,
		Handlers: map[config.ToolCategory]tools.Handler{
			config.CategoryMarket:       sim.NewMarketHandler(),
			config.CategoryBacktest:     sim.NewBacktestHandler(),
			config.CategoryIntelligence: sim.NewIntelligenceHandler(),
			config.CategoryTrading:      sim.NewTradingHandler(),
		},
		Watch: *watch,
	}
	if budgetStore != nil {
		opts.BudgetStore = budgetStore
		opts.Audit = budgetStore
	}

	rt, err := runtime.New(cfg, opts)
	if err != nil {
		slog.Error("Failed to build runtime", "error", err)
		os.Exit(1)
	}

	// The meeting handler posts presentation artifacts onto the bus, so it
	// binds after the runtime owns one.
	rt.Registry.BindHandler(config.CategoryMeeting, sim.NewMeetingHandler(rt.Bus))

	if err := rt.Start(ctx); err != nil {
		slog.Error("Failed to start runtime", "error", err)
		os.Exit(1)
	}
	defer rt.Stop()
	slog.Info("Runtime started", "agents", len(cfg.Agents))

	// 5. Operator HTTP API, blocking until signal.
	apiDeps := api.Deps{
		Scheduler:  rt.Sched,
		Topics:     rt.Topics,
		Cycles:     rt.Cycles,
		Governance: rt.Governance,
		Intentions: rt.Intentions,
		Feedback:   rt.Feedback,
		Reports:    rt.Reports,
	}
	if dbClient != nil {
		apiDeps.DBHealth = func(ctx context.Context) (*database.HealthStatus, error) {
			return database.Health(ctx, dbClient.DB())
		}
	}
	httpServer := api.NewServer(":"+httpPort, apiDeps)

	if err := httpServer.Start(ctx); err != nil && err != http.ErrServerClosed {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
