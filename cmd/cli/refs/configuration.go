package refs

const (
	configurationBaseURLKeyConstant     = "base_url"
	configurationTokenSourceKeyConstant = "token_source"
	configurationDryRunKeyConstant      = "dry_run"
	configurationAssumeYesKeyConstant   = "assume_yes"
	defaultBaseURLConstant              = "https://huggingface.co"
)

// Configuration describes configuration values shared by reference commands.
type Configuration struct {
	BaseURL     string `mapstructure:"base_url"`
	TokenSource string `mapstructure:"token_source"`
	DryRun      bool   `mapstructure:"dry_run"`
	AssumeYes   bool   `mapstructure:"assume_yes"`
}

// DefaultConfiguration returns baseline configuration values for reference commands.
func DefaultConfiguration() Configuration {
	return Configuration{
		BaseURL:     defaultBaseURLConstant,
		TokenSource: "",
		DryRun:      false,
		AssumeYes:   false,
	}
}

// DefaultConfigurationValues produces Viper defaults for reference commands.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + "." + configurationBaseURLKeyConstant:     defaults.BaseURL,
		rootKey + "." + configurationTokenSourceKeyConstant: defaults.TokenSource,
		rootKey + "." + configurationDryRunKeyConstant:      defaults.DryRun,
		rootKey + "." + configurationAssumeYesKeyConstant:   defaults.AssumeYes,
	}
}
