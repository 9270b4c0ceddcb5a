package layout

import (
	"atlas-parts/target"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"os"
	"strings"
)

const (
	EnvConfigPath = "LAYOUT_CONFIG_PATH"
	EnvTarget     = "TARGET"
)

type CategoryConfig struct {
	Name    string `yaml:"name"`
	Ordinal uint32 `yaml:"ordinal"`
	Total   uint32 `yaml:"total"`
}

type TargetConfig struct {
	Key              string           `yaml:"key"`
	Id               string           `yaml:"id"`
	Title            string           `yaml:"title"`
	Region           string           `yaml:"region"`
	MajorVersion     uint16           `yaml:"majorVersion"`
	MinorVersion     uint16           `yaml:"minorVersion"`
	PointerAddress   uint64           `yaml:"pointerAddress"`
	BaseDisplacement uint64           `yaml:"baseDisplacement"`
	SlotStride       uint64           `yaml:"slotStride"`
	MaxOwned         uint32           `yaml:"maxOwned"`
	CountOffset      uint64           `yaml:"countOffset"`
	Categories       []CategoryConfig `yaml:"categories"`
}

type Config struct {
	Default string         `yaml:"default"`
	Targets []TargetConfig `yaml:"targets"`
}

func Parse(data []byte) (Config, error) {
	var c Config
	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return Config{}, err
	}
	if len(c.Targets) == 0 {
		return Config{}, errors.New("layout configuration declares no targets")
	}
	return c, nil
}

// Read loads the configuration at path, or the built in configuration when path is empty.
func Read(l logrus.FieldLogger) func(path string) (Config, error) {
	return func(path string) (Config, error) {
		if path == "" {
			l.Debugf("No layout configuration supplied, using built in targets.")
			return Parse([]byte(defaultConfig))
		}
		data, err := os.ReadFile(path)
		if err != nil {
			l.WithError(err).Errorf("Unable to read layout configuration [%s].", path)
			return Config{}, err
		}
		return Parse(data)
	}
}

// Lookup returns the layout for key, falling back to the configured default when key is empty.
func (c Config) Lookup(key string) (Model, error) {
	if key == "" {
		key = c.Default
	}
	if key == "" {
		key = c.Targets[0].Key
	}
	for _, tc := range c.Targets {
		if strings.EqualFold(tc.Key, key) {
			return tc.Model()
		}
	}
	return Model{}, fmt.Errorf("no layout configured for target [%s]", key)
}

func (tc TargetConfig) Model() (Model, error) {
	if tc.Id == "" {
		return Model{}, fmt.Errorf("target [%s] has no id", tc.Key)
	}
	id, err := uuid.Parse(tc.Id)
	if err != nil {
		return Model{}, fmt.Errorf("target [%s] has invalid id: %w", tc.Key, err)
	}
	if id == uuid.Nil {
		return Model{}, fmt.Errorf("target [%s] id cannot be nil", tc.Key)
	}
	b := NewBuilder().
		SetTarget(target.New(id, tc.Title, tc.Region, tc.MajorVersion, tc.MinorVersion)).
		SetPointerAddress(tc.PointerAddress).
		SetBaseDisplacement(tc.BaseDisplacement).
		SetSlotStride(tc.SlotStride).
		SetMaxOwned(tc.MaxOwned).
		SetCountOffset(tc.CountOffset)
	for _, cc := range tc.Categories {
		b = b.AddCategory(cc.Name, cc.Ordinal, cc.Total)
	}
	return b.Build()
}

// Load resolves the active layout from LAYOUT_CONFIG_PATH and TARGET.
func Load(l logrus.FieldLogger) (Model, error) {
	c, err := Read(l)(os.Getenv(EnvConfigPath))
	if err != nil {
		return Model{}, err
	}
	m, err := c.Lookup(os.Getenv(EnvTarget))
	if err != nil {
		l.WithError(err).Errorf("Unable to resolve layout.")
		return Model{}, err
	}
	l.Infof("Using layout for target %s.", m.Target().String())
	return m, nil
}
