package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Configuration file names looked up inside the config directory.
const (
	agentsFile      = "agents.yaml"
	permissionsFile = "permissions.yaml"
	toolsFile       = "tools.yaml"
	keywordsFile    = "keywords.yaml"
	scopesFile      = "scopes.yaml"
	triggersFile    = "triggers.yaml"
	systemFile      = "aiquant.yaml"
)

// Initialize loads, merges, validates and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Merge built-in tables with user-defined entries
//  4. Apply defaults
//  5. Validate everything
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"agents", stats.Agents,
		"teams", stats.Teams,
		"tools", stats.Tools,
		"scopes", stats.Scopes,
		"triggers", stats.Triggers)
	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{
		Agents:      make(map[string]*AgentConfig),
		Teams:       make(map[string]TeamConfig),
		Permissions: make(map[string]*ToolPermission),
		Tools:       make(map[string]*ToolSchemaConfig),
		Keywords:    DefaultKeywords(),
		Scopes:      make(map[string]AutonomousScope),
		Scheduler:   DefaultSchedulerConfig(),
		Governance:  DefaultGovernance(),
		dir:         configDir,
	}

	// agents.yaml is required; everything else has built-in fallbacks.
	var agents AgentsYAML
	if err := readYAML(filepath.Join(configDir, agentsFile), &agents, true); err != nil {
		return nil, err
	}
	for id, ac := range agents.Agents {
		agentCopy := ac
		cfg.Agents[id] = &agentCopy
	}
	for id, tc := range agents.Teams {
		cfg.Teams[id] = tc
	}

	var perms PermissionsYAML
	if err := readYAML(filepath.Join(configDir, permissionsFile), &perms, false); err != nil {
		return nil, err
	}
	for name, p := range perms.Tools {
		permCopy := p
		cfg.Permissions[name] = &permCopy
	}

	// Built-in tool contracts first, then user overrides.
	for name, t := range BuiltinTools() {
		toolCopy := t
		cfg.Tools[name] = &toolCopy
	}
	var tools ToolsYAML
	if err := readYAML(filepath.Join(configDir, toolsFile), &tools, false); err != nil {
		return nil, err
	}
	for name, t := range tools.Tools {
		toolCopy := t
		cfg.Tools[name] = &toolCopy
	}

	var keywords KeywordsConfig
	if err := readYAML(filepath.Join(configDir, keywordsFile), &keywords, false); err != nil {
		return nil, err
	}
	mergeKeywords(cfg.Keywords, &keywords)

	var scopes ScopesYAML
	if err := readYAML(filepath.Join(configDir, scopesFile), &scopes, false); err != nil {
		return nil, err
	}
	for name, s := range scopes.AutonomousScopes {
		cfg.Scopes[name] = s
	}

	var triggers TriggersYAML
	if err := readYAML(filepath.Join(configDir, triggersFile), &triggers, false); err != nil {
		return nil, err
	}
	cfg.Triggers = triggers.Triggers

	var system SystemYAML
	if err := readYAML(filepath.Join(configDir, systemFile), &system, false); err != nil {
		return nil, err
	}
	if system.Scheduler != nil {
		if err := mergo.Merge(&cfg.Scheduler, *system.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging scheduler config: %w", err)
		}
	}
	if system.Governance != nil {
		if err := mergo.Merge(&cfg.Governance, *system.Governance, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging governance config: %w", err)
		}
	}

	return cfg, nil
}

// readYAML reads a YAML file with env expansion. Missing optional files are
// skipped silently.
func readYAML(path string, out any, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(ExpandEnv(data), out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidYAML, path, err)
	}
	return nil
}

// mergeKeywords overlays user-defined keyword tables on the built-in ones.
// User entries replace the built-in list for the same topic kind.
func mergeKeywords(base, user *KeywordsConfig) {
	for kind, words := range user.Topics {
		if len(words) > 0 {
			base.Topics[kind] = words
		}
	}
	if len(user.Urgency) > 0 {
		base.Urgency = user.Urgency
	}
	for kind, n := range user.RequiredSeconds {
		base.RequiredSeconds[kind] = n
	}
	if user.DefaultThreshold > 0 {
		base.DefaultThreshold = user.DefaultThreshold
	}
}

// RequiredSecondsFor returns the seconding threshold for a topic kind.
func (k *KeywordsConfig) RequiredSecondsFor(kind string) int {
	if n, ok := k.RequiredSeconds[kind]; ok {
		return n
	}
	return k.DefaultThreshold
}
