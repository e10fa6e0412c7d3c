package config

import (
	"flag"
)

// Flags lie les options communes des programmes à un FlagSet. Après
// fs.Parse, Resolve applique fichier puis options explicitement passées.
type Flags struct {
	fs   *flag.FlagSet
	path string
	over Config
}

func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()
	fs.StringVar(&f.path, "config", "", "YAML config file")
	fs.IntVar(&f.over.Width, "width", def.Width, "board width (max 26)")
	fs.IntVar(&f.over.Height, "height", def.Height, "board height (max 26)")
	fs.IntVar(&f.over.Mines, "mines", def.Mines, "number of mines")
	fs.Int64Var(&f.over.Seed, "seed", def.Seed, "random seed, 0 = time based")
	fs.StringVar(&f.over.LogLevel, "log-level", def.LogLevel, "debug|info|warn|error")
	return f
}

// Locale ajoute -locale-dir et -lang (programme terminal).
func (f *Flags) Locale() *Flags {
	def := Default()
	f.fs.StringVar(&f.over.Locale.Dir, "locale-dir", def.Locale.Dir, "directory of .po translations")
	f.fs.StringVar(&f.over.Locale.Language, "lang", def.Locale.Language, "translation language")
	return f
}

// Addr ajoute -addr (serveur).
func (f *Flags) Addr() *Flags {
	f.fs.StringVar(&f.over.Addr, "addr", Default().Addr, "listen address")
	return f
}

// Resolve retourne la configuration finale, normalisée et validée.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		loaded, err := Load(f.path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.over.Width
		case "height":
			cfg.Height = f.over.Height
		case "mines":
			cfg.Mines = f.over.Mines
		case "seed":
			cfg.Seed = f.over.Seed
		case "log-level":
			cfg.LogLevel = f.over.LogLevel
		case "locale-dir":
			cfg.Locale.Dir = f.over.Locale.Dir
		case "lang":
			cfg.Locale.Language = f.over.Locale.Language
		case "addr":
			cfg.Addr = f.over.Addr
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
