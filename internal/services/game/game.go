package game

import (
	"context"
	"math"
	"strings"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/gameconfig"
)

// MaxSteps bounds how many numbers one game may count through.
const MaxSteps = 10000

// ConfigView is the config block of the game-data response.
type ConfigView struct {
	Start       int     `json:"start"`
	End         int     `json:"end"`
	SpecialNum  int     `json:"special_num"`
	MagicWord   string  `json:"magic_word"`
	AhoText     *string `json:"aho_text"`
	AhoImageURL *string `json:"aho_image_url"`
	AhoSoundURL *string `json:"aho_sound_url"`
}

type GameData struct {
	Config   ConfigView `json:"config"`
	Sequence []Step     `json:"sequence"`
}

// Settings is a full replacement of the configuration. Nil numbers are
// treated as missing.
type Settings struct {
	StartNum    *int
	EndNum      *int
	SpecialNum  *int
	MagicWord   string
	AhoText     string
	AhoImageURL string
	AhoSoundURL string
}

type Service interface {
	GameData(ctx context.Context) (*GameData, error)
	UpdateSettings(ctx context.Context, in Settings) (*gameconfig.GameConfig, error)
}

type Impl struct {
	repo gameconfig.GameConfigRepository
}

func New(repo gameconfig.GameConfigRepository) Service {
	return &Impl{repo: repo}
}

func (s *Impl) GameData(ctx context.Context) (*GameData, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, apperror.Internalf(err, "load game config")
	}
	if cfg == nil {
		return nil, apperror.NewNotFound("Config not found (run the seed command)")
	}
	if int64(cfg.EndNum)-int64(cfg.StartNum) >= MaxSteps {
		return nil, apperror.Internalf(nil, "stored game config spans %d..%d", cfg.StartNum, cfg.EndNum)
	}

	return &GameData{
		Config: ConfigView{
			Start:       cfg.StartNum,
			End:         cfg.EndNum,
			SpecialNum:  cfg.SpecialNum,
			MagicWord:   cfg.MagicWord,
			AhoText:     cfg.AhoText,
			AhoImageURL: cfg.AhoImageURL,
			AhoSoundURL: cfg.AhoSoundURL,
		},
		Sequence: Sequence(*cfg),
	}, nil
}

func isSet(n *int) bool { return n != nil && *n != 0 }

func (in Settings) validate() error {
	if !isSet(in.StartNum) || !isSet(in.EndNum) || !isSet(in.SpecialNum) {
		return apperror.Validationf("Start, End, and Special Num are required")
	}
	if *in.StartNum >= *in.EndNum {
		return apperror.Validationf("Start Number must be smaller than End Number")
	}
	if *in.SpecialNum <= 0 {
		return apperror.Validationf("Special Number must be greater than 0")
	}
	for _, n := range []int{*in.StartNum, *in.EndNum, *in.SpecialNum} {
		if n < math.MinInt32 || n > math.MaxInt32 {
			return apperror.Validationf("Numbers must fit in 32 bits")
		}
	}
	if int64(*in.EndNum)-int64(*in.StartNum) >= MaxSteps {
		return apperror.Validationf("The range from Start to End must be at most %d numbers", MaxSteps)
	}
	return nil
}

// optional maps an unset asset to NULL.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (s *Impl) UpdateSettings(ctx context.Context, in Settings) (*gameconfig.GameConfig, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	cfg := &gameconfig.GameConfig{
		ID:          gameconfig.ConfigID,
		StartNum:    *in.StartNum,
		EndNum:      *in.EndNum,
		SpecialNum:  *in.SpecialNum,
		MagicWord:   in.MagicWord,
		AhoText:     optional(in.AhoText),
		AhoImageURL: optional(in.AhoImageURL),
		AhoSoundURL: optional(in.AhoSoundURL),
	}
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, apperror.Internalf(err, "save game config")
	}
	return cfg, nil
}
