package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/core/styles"
	"github.com/colonyops/inspector/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	// Check for existing config
	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.promptUser(&answers); err != nil {
			return err
		}
	}

	// Backup existing config if needed
	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	data, err := GenerateConfig(answers)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := WriteConfig(data, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Edit the entity properties in %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'inspector config validate'")
	p.Printf("  3. Run 'inspector' to open the inspector")

	return nil
}

// Answers are the choices the wizard collects.
type Answers struct {
	Theme     string
	Analytics bool
}

// DefaultAnswers returns the answers used with --yes.
func DefaultAnswers() Answers {
	return Answers{Theme: styles.DefaultTheme, Analytics: true}
}

// GenerateConfig renders a starter config with the sample entity.
func GenerateConfig(a Answers) ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.TUI.Theme = a.Theme
	cfg.Analytics.Enabled = &a.Analytics
	return cfg.Marshal()
}

// WriteConfig writes data to path, creating parent directories.
func WriteConfig(data []byte, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (w *Wizard) promptUser(a *Answers) error {
	themes := styles.ThemeNames()
	options := make([]huh.Option[string], len(themes))
	for i, name := range themes {
		options[i] = huh.NewOption(name, name)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Description("Color theme for the inspector").
			Options(options...).
			Value(&a.Theme),
		huh.NewConfirm().
			Title("Collect interaction analytics?").
			Description("Keyboard interactions on controls are recorded to the log").
			Value(&a.Analytics),
	))

	return form.Run()
}
