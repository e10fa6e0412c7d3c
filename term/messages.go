package term

import (
	"github.com/leonelquinteros/gotext"

	"minesweeper/config"
)

// Identifiants des messages, en anglais. Ils servent de clés dans les
// catalogues .po et s'affichent tels quels sans traduction.
const (
	msgPrompt       = "Enter a location: "
	msgInvalidInput = "Invalid input. Please enter a valid location."
	msgWin          = "You win!"
	msgGameOver     = "Game over!"
)

// SetupLocale charge les traductions décrites par cfg. Sans répertoire,
// les messages restent en anglais.
func SetupLocale(cfg config.LocaleConfig) {
	if cfg.Dir == "" {
		return
	}
	gotext.Configure(cfg.Dir, cfg.Language, cfg.Domain)
}

func tr(msgid string) string {
	return gotext.Get(msgid)
}
