package game

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/gameconfig"
)

// FinaleSoundURL plays on the terminal magic-word entry.
const FinaleSoundURL = "https://www.myinstants.com/media/sounds/meme-de-creditos-finales.mp3"

type Assets struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
	Sound string `json:"sound,omitempty"`
}

type Step struct {
	Step   int    `json:"step"`
	Value  string `json:"value"`
	IsAho  bool   `json:"is_aho"`
	Assets Assets `json:"assets"`
}

// IsAho reports whether n is a callout step: a multiple of special, or a
// number whose decimal form contains special's decimal form.
func IsAho(n, special int) bool {
	if special <= 0 {
		return false
	}
	return n%special == 0 || strings.Contains(strconv.Itoa(n), strconv.Itoa(special))
}

func ahoAssets(cfg gameconfig.GameConfig) Assets {
	var a Assets
	if cfg.AhoText != nil {
		a.Text = *cfg.AhoText
	}
	if cfg.AhoImageURL != nil {
		a.Image = *cfg.AhoImageURL
	}
	if cfg.AhoSoundURL != nil {
		a.Sound = *cfg.AhoSoundURL
	}
	return a
}

// Steps yields one entry per number in [StartNum, EndNum] followed by the
// magic-word finale at EndNum+1.
func Steps(cfg gameconfig.GameConfig) iter.Seq[Step] {
	assets := ahoAssets(cfg)
	return func(yield func(Step) bool) {
		for i := cfg.StartNum; i <= cfg.EndNum; i++ {
			s := Step{Step: i, Value: strconv.Itoa(i), IsAho: IsAho(i, cfg.SpecialNum)}
			if s.IsAho {
				s.Assets = assets
			}
			if !yield(s) {
				return
			}
		}
		yield(Step{
			Step:   cfg.EndNum + 1,
			Value:  cfg.MagicWord,
			IsAho:  true,
			Assets: Assets{Sound: FinaleSoundURL},
		})
	}
}

func Sequence(cfg gameconfig.GameConfig) []Step {
	return slices.Collect(Steps(cfg))
}
