package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-fern/fern/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Print the configuration fern would use for a project directory.

Values missing from fern.yaml are filled with defaults. The app name
comes from the go.mod module path when the file does not set one.`,
		Usage: "fern config [DIR]",
		Run:   runConfig,
	})
}

// resolvedView is the printable form of config.Resolved.
type resolvedView struct {
	Root       string `yaml:"root"`
	ModulePath string `yaml:"module,omitempty"`
	AppName    string `yaml:"app_name"`
	AppID      string `yaml:"app_id"`
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
	LogLevel   string `yaml:"log_level"`
}

func runConfig(args []string) error {
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("too many arguments\n\nUsage: fern config [DIR]")
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	data, err := yaml.Marshal(resolvedView{
		Root:       cfg.Root,
		ModulePath: cfg.ModulePath,
		AppName:    cfg.AppName,
		AppID:      cfg.AppID,
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		FPS:        cfg.FPS,
		Background: fmt.Sprintf("#%08X", uint32(cfg.Background)),
		LogLevel:   cfg.LogLevel.String(),
	})
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
