package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type LoginRequest struct {
	LineUserID  string `json:"line_user_id"`
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
	PictureURL  string `json:"picture_url"`
}

type CreateCommentRequest struct {
	LineUserID string `json:"line_user_id"`
	Content    string `json:"content"`
	ParentID   *uint  `json:"parent_id"`
}

type UpdateCommentRequest struct {
	LineUserID string `json:"line_user_id"`
	Content    string `json:"content"`
}

type LikeRequest struct {
	LineUserID string `json:"line_user_id"`
}

type SettingsRequest struct {
	StartNum    flexInt `json:"start_num"`
	EndNum      flexInt `json:"end_num"`
	SpecialNum  flexInt `json:"special_num"`
	MagicWord   string  `json:"magic_word"`
	AhoText     string  `json:"aho_text"`
	AhoImageURL string  `json:"aho_image_url"`
	AhoSoundURL string  `json:"aho_sound_url"`
}

type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

// flexInt accepts a JSON number, a numeric string, null or "". The latter two
// leave it unset.
type flexInt struct {
	v *int
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		f.v = nil
		return nil
	}

	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			f.v = nil
			return nil
		}
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return f.set(raw, float64(n))
	}
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || fl != math.Trunc(fl) {
		return fmt.Errorf("%q is not an integer", raw)
	}
	return f.set(raw, fl)
}

// set stores v when it fits the INTEGER column.
func (f *flexInt) set(raw string, v float64) error {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("%q is out of range", raw)
	}
	n := int(v)
	f.v = &n
	return nil
}

func (f flexInt) Ptr() *int {
	return f.v
}
