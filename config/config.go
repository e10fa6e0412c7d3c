package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"minesweeper/game"
)

// MaxDimension borne la largeur et la hauteur : les axes sont étiquetés A à Z.
const MaxDimension = 26

// LocaleConfig indique où chercher les traductions (.po) des messages du jeu.
type LocaleConfig struct {
	Dir      string `yaml:"dir"`      // répertoire racine des catalogues, vide = pas de traduction
	Language string `yaml:"language"` // ex. "fr_FR"
	Domain   string `yaml:"domain"`   // nom du fichier .po sans extension
}

// Config regroupe les paramètres fixés au lancement d'une partie.
type Config struct {
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Mines    int          `yaml:"mines"`
	Seed     int64        `yaml:"seed"`     // 0 = graine basée sur l'heure
	LogLevel string       `yaml:"logLevel"` // debug|info|warn|error
	Locale   LocaleConfig `yaml:"locale"`
	Addr     string       `yaml:"addr"` // adresse d'écoute du serveur WebSocket
}

// Default retourne la configuration de base : 15x10 avec 15 mines.
func Default() Config {
	return Config{
		Width:    15,
		Height:   10,
		Mines:    15,
		LogLevel: "warn",
		Locale:   LocaleConfig{Language: "en_US", Domain: "minesweeper"},
		Addr:     ":8080",
	}
}

// Load lit un fichier YAML par-dessus Default. Les champs inconnus sont refusés.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize ramène largeur et hauteur à MaxDimension au plus.
func (c *Config) Normalize() {
	if c.Width > MaxDimension {
		c.Width = MaxDimension
	}
	if c.Height > MaxDimension {
		c.Height = MaxDimension
	}
}

// Validate refuse une configuration injouable, en particulier plus de mines
// que de cases (le tirage des mines ne terminerait jamais).
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "width", Err: game.ErrInvalidDimensions}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "height", Err: game.ErrInvalidDimensions}
	}
	if c.Mines < 0 {
		return &ConfigError{Field: "mines", Err: game.ErrNegativeMineCount}
	}
	if c.Mines > c.Width*c.Height {
		return &ConfigError{Field: "mines", Err: game.ErrTooManyMines}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &ConfigError{Field: "logLevel", Err: err}
	}
	return nil
}

// ConfigError signale un paramètre de lancement invalide.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ConfigError: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
