package configuration

import (
	"errors"
	"io/ioutil"
	"strconv"

	yaml "gopkg.in/yaml.v2"
)

// Settings is the on-disk shape of a client configuration file
type Settings struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	PageLimit      int    `yaml:"page_limit"`
}

// YAMLConfigStorage reads settings from a YAML file once and serves them as
// read-only configuration; Set is rejected to keep the file authoritative
type YAMLConfigStorage struct {
	configs map[Key]string
}

// NewYAMLConfigStorage ...
func NewYAMLConfigStorage(path string) (*YAMLConfigStorage, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}

	configs := map[Key]string{
		BaseURL: settings.BaseURL,
		APIKey:  settings.APIKey,
		Token:   settings.Token,
	}
	if settings.TimeoutSeconds > 0 {
		configs[TimeoutSeconds] = strconv.Itoa(settings.TimeoutSeconds)
	}
	if settings.PageLimit > 0 {
		configs[PageLimit] = strconv.Itoa(settings.PageLimit)
	}

	return &YAMLConfigStorage{configs: configs}, nil
}

// Get ...
func (s *YAMLConfigStorage) Get(key Key) (string, error) {
	v, ok := s.configs[key]
	if !ok || v == "" {
		return "", errors.New("config key not found")
	}
	return v, nil
}

// Set ...
func (s *YAMLConfigStorage) Set(key Key, val string) error {
	return errors.New("yaml config storage is read-only")
}
