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
	configurationKeySeparatorConstant          = "."
	environmentKeySeparatorConstant            = "_"
	listValueSeparatorConstant                 = ","
	embeddedDefaultsMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
	configurationReadErrorTemplateConstant     = "failed to read configuration: %w"
	configurationDecodeErrorTemplateConstant   = "failed to parse configuration: %w"
)

// ConfigurationLoader resolves configuration in precedence order: explicit defaults, embedded defaults,
// a configuration file, then environment variables carrying the configured prefix.
type ConfigurationLoader struct {
	fileName          string
	fileType          string
	environmentPrefix string
	searchPaths       []string
	embeddedDefaults  []byte
}

// LoadedConfiguration reports which configuration file, if any, was read.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader looking for fileName in searchPaths.
func NewConfigurationLoader(fileName string, fileType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		fileName:          fileName,
		fileType:          fileType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string{}, searchPaths...),
	}
}

// SetEmbeddedDefaults stores configuration compiled into the binary. It must use the loader's file type.
func (loader *ConfigurationLoader) SetEmbeddedDefaults(configurationData []byte) {
	loader.embeddedDefaults = append([]byte{}, configurationData...)
}

// LoadConfiguration decodes the resolved configuration into target. An empty configurationFilePath searches
// the loader's paths; a missing file there is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, target any) (LoadedConfiguration, error) {
	viperInstance := loader.newViper(defaultValues)

	if len(loader.embeddedDefaults) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedDefaults)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedDefaultsMergeErrorTemplateConstant, mergeError)
		}
	}

	if readError := loader.mergeConfigurationFile(viperInstance, configurationFilePath); readError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
	}

	decodeHook := viper.DecodeHook(mapstructure.StringToSliceHookFunc(listValueSeparatorConstant))
	if decodeError := viperInstance.Unmarshal(target, decodeHook); decodeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationDecodeErrorTemplateConstant, decodeError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func (loader *ConfigurationLoader) newViper(defaultValues map[string]any) *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.fileName)
	viperInstance.SetConfigType(loader.fileType)
	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(configurationKeySeparatorConstant, environmentKeySeparatorConstant))
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}
	return viperInstance
}

func (loader *ConfigurationLoader) mergeConfigurationFile(viperInstance *viper.Viper, configurationFilePath string) error {
	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	} else {
		for _, searchPath := range loader.searchPaths {
			viperInstance.AddConfigPath(searchPath)
		}
	}

	mergeError := viperInstance.MergeInConfig()
	var notFoundError viper.ConfigFileNotFoundError
	if mergeError == nil || errors.As(mergeError, &notFoundError) {
		return nil
	}
	return mergeError
}
