package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/stylewrap"
)

var k = koanf.New(".")

// defaultPaths are the source patterns processed when none are configured.
var defaultPaths = []string{
	"internal/**/*.go",
	"web/components/**/*.go",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylewrap.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEWRAP_* prefix)
	if err := k.Load(env.Provider("STYLEWRAP_", ".", func(s string) string {
		// STYLEWRAP_REWRITE_WRITE -> rewrite.write
		// STYLEWRAP_CHECK_STRICT -> check.strict
		// STYLEWRAP_ROOT -> root
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEWRAP_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRewriteConfig constructs the library's Config struct from koanf state.
func buildRewriteConfig(check bool) stylewrap.Config {
	config := stylewrap.Config{
		ProjectRoot: resolveProjectRoot(),
		Write:       getBoolWithFallback("write", "rewrite.write", false),
		Check:       check,
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle paths: check flag key first, then config key
	if paths := k.Strings("paths"); len(paths) > 0 {
		config.Paths = paths
	} else if paths := k.Strings("rewrite.paths"); len(paths) > 0 {
		config.Paths = paths
	} else {
		config.Paths = defaultPaths
	}

	return config
}

// resolveProjectRoot prefers the flag/config key, then the STYLEWRAP_ROOT
// environment variable (loaded under the "root" key). Empty means the
// library resolves the nearest go.mod per file.
func resolveProjectRoot() string {
	if v := k.String("project-root"); v != "" {
		return v
	}
	return k.String("root")
}

// buildReportConfig constructs the reporter options from koanf state.
func buildReportConfig() stylewrap.ReportConfig {
	return stylewrap.ReportConfig{
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
