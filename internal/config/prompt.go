package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/chime/internal/models"
)

const asciiLogo = `
 ██████╗██╗  ██╗██╗███╗   ███╗███████╗
██╔════╝██║  ██║██║████╗ ████║██╔════╝
██║     ███████║██║██╔████╔██║█████╗
██║     ██╔══██║██║██║╚██╔╝██║██╔══╝
╚██████╗██║  ██║██║██║ ╚═╝ ██║███████╗
 ╚═════╝╚═╝  ╚═╝╚═╝╚═╝     ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the first run prompts.
type PromptOptions struct {
	Sound    string
	Interval int
}

// WithPromptConfig returns an Option that asks for the alarm defaults when
// the config file does not exist yet. It must be applied before
// WithViperConfig so that the answers end up in the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errConfigOption.Wrap(err)
		}

		return writePromptOptions(configPath, opts)
	}
}

func soundOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Sounds))

	for i, s := range models.Sounds {
		opts = append(opts, huh.NewOption(s, s).Selected(i == 0))
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Chime for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'chime edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default alarm sound").
				Options(soundOptions()...).
				Value(&opts.Sound),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default alarm interval").
				Options(
					huh.NewOption("1 minute", 1).Selected(true),
					huh.NewOption("2 minutes", 2),
					huh.NewOption("5 minutes", 5),
					huh.NewOption("10 minutes", 10),
				).
				Value(&opts.Interval),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}
