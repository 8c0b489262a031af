package cli

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common  ApplicationCommonConfiguration  `mapstructure:"common"`
	Recipes ApplicationRecipesConfiguration `mapstructure:"recipes"`
}

// ApplicationCommonConfiguration stores the logging defaults shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationRecipesConfiguration stores the recipe catalog defaults.
type ApplicationRecipesConfiguration struct {
	File             string `mapstructure:"file"`
	WorkingDirectory string `mapstructure:"working_directory"`
}

type configurationInitializationPlan struct {
	DirectoryPath string
	FilePath      string
}
