package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	configurationNameMissingMessageConstant     = "configuration name must be provided"
	configurationTypeMissingMessageConstant     = "configuration type must be provided"
	embeddedConfigurationReadTemplateConstant   = "unable to read embedded configuration: %w"
	explicitConfigurationReadTemplateConstant   = "unable to read configuration file %s: %w"
	discoveredConfigurationReadTemplateConstant = "unable to merge discovered configuration: %w"
	configurationDecodeTemplateConstant         = "unable to decode configuration: %w"
	environmentKeySeparatorConstant             = "."
	environmentKeyReplacementConstant           = "_"
)

// LoadedConfiguration describes where the effective configuration came from.
type LoadedConfiguration struct {
	ConfigFileUsed string
	EmbeddedUsed   bool
}

// ConfigurationLoader resolves configuration from embedded defaults, files, and the environment.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// NewConfigurationLoader constructs a ConfigurationLoader with the provided discovery settings.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string{}, searchPaths...),
	}
}

// SetEmbeddedConfiguration registers embedded default configuration content.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	loader.embeddedConfiguration = append([]byte{}, configurationData...)
	loader.embeddedConfigurationType = configurationType
}

// LoadConfiguration merges embedded defaults, discovered or explicit files, and environment overrides into target.
func (loader *ConfigurationLoader) LoadConfiguration(explicitFilePath string, defaultValues map[string]any, target any) (LoadedConfiguration, error) {
	if len(strings.TrimSpace(loader.configurationName)) == 0 {
		return LoadedConfiguration{}, errors.New(configurationNameMissingMessageConstant)
	}
	if len(strings.TrimSpace(loader.configurationType)) == 0 {
		return LoadedConfiguration{}, errors.New(configurationTypeMissingMessageConstant)
	}

	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	metadata := LoadedConfiguration{}

	if len(loader.embeddedConfiguration) > 0 {
		embeddedType := loader.embeddedConfigurationType
		if len(embeddedType) == 0 {
			embeddedType = loader.configurationType
		}
		viperInstance.SetConfigType(embeddedType)
		if readError := viperInstance.ReadConfig(bytes.NewReader(loader.embeddedConfiguration)); readError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationReadTemplateConstant, readError)
		}
		viperInstance.SetConfigType(loader.configurationType)
		metadata.EmbeddedUsed = true
	}

	trimmedExplicitPath := strings.TrimSpace(explicitFilePath)
	if len(trimmedExplicitPath) > 0 {
		viperInstance.SetConfigFile(trimmedExplicitPath)
		if mergeError := viperInstance.MergeInConfig(); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(explicitConfigurationReadTemplateConstant, trimmedExplicitPath, mergeError)
		}
		metadata.ConfigFileUsed = trimmedExplicitPath
	} else if len(loader.searchPaths) > 0 {
		discoveryInstance := viper.New()
		discoveryInstance.SetConfigName(loader.configurationName)
		discoveryInstance.SetConfigType(loader.configurationType)
		for _, searchPath := range loader.searchPaths {
			if len(strings.TrimSpace(searchPath)) == 0 {
				continue
			}
			discoveryInstance.AddConfigPath(searchPath)
		}
		discoveryError := discoveryInstance.ReadInConfig()
		if discoveryError == nil {
			discoveredFilePath := discoveryInstance.ConfigFileUsed()
			viperInstance.SetConfigFile(discoveredFilePath)
			if mergeError := viperInstance.MergeInConfig(); mergeError != nil {
				return LoadedConfiguration{}, fmt.Errorf(discoveredConfigurationReadTemplateConstant, mergeError)
			}
			metadata.ConfigFileUsed = discoveredFilePath
		} else {
			var notFoundError viper.ConfigFileNotFoundError
			if !errors.As(discoveryError, &notFoundError) {
				return LoadedConfiguration{}, fmt.Errorf(discoveredConfigurationReadTemplateConstant, discoveryError)
			}
		}
	}

	if len(strings.TrimSpace(loader.environmentPrefix)) > 0 {
		viperInstance.SetEnvPrefix(loader.environmentPrefix)
		viperInstance.SetEnvKeyReplacer(strings.NewReplacer(environmentKeySeparatorConstant, environmentKeyReplacementConstant))
		viperInstance.AutomaticEnv()
		bindEnvironmentKeys(viperInstance, defaultValues)
	}

	if target != nil {
		decodeError := viperInstance.Unmarshal(target, func(decoderConfiguration *mapstructure.DecoderConfig) {
			decoderConfiguration.TagName = "mapstructure"
		})
		if decodeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(configurationDecodeTemplateConstant, decodeError)
		}
	}

	return metadata, nil
}

// bindEnvironmentKeys ensures keys known only through defaults participate in environment overrides.
func bindEnvironmentKeys(viperInstance *viper.Viper, defaultValues map[string]any) {
	for defaultKey := range defaultValues {
		_ = viperInstance.BindEnv(defaultKey)
	}
	for _, settingsKey := range viperInstance.AllKeys() {
		_ = viperInstance.BindEnv(settingsKey)
	}
}
