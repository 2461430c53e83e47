package gameconfig

// ConfigID is the id of the single configuration row.
const ConfigID = 1

const (
	DefaultStartNum   = 1
	DefaultEndNum     = 41
	DefaultSpecialNum = 3
	DefaultMagicWord  = "オモロー"
)

// GameConfig drives the sequence generator. The asset fields are optional and
// stored as NULL when unset.
type GameConfig struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	StartNum    int     `gorm:"column:start_num;not null" json:"start_num"`
	EndNum      int     `gorm:"column:end_num;not null" json:"end_num"`
	SpecialNum  int     `gorm:"column:special_num;not null" json:"special_num"`
	MagicWord   string  `gorm:"column:magic_word;type:text;not null" json:"magic_word"`
	AhoText     *string `gorm:"column:aho_text;type:text" json:"aho_text"`
	AhoImageURL *string `gorm:"column:aho_image_url;type:text" json:"aho_image_url"`
	AhoSoundURL *string `gorm:"column:aho_sound_url;type:text" json:"aho_sound_url"`
}

func (GameConfig) TableName() string {
	return "game_config"
}

func DefaultConfig() *GameConfig {
	return &GameConfig{
		ID:         ConfigID,
		StartNum:   DefaultStartNum,
		EndNum:     DefaultEndNum,
		SpecialNum: DefaultSpecialNum,
		MagicWord:  DefaultMagicWord,
	}
}
