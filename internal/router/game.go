package router

import (
	"net/http"

	"github.com/MyelinBots/nabeatsu-go/internal/services/game"
)

func GetGameData() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		data, err := rc.services.Game.GameData(r.Context())
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, data)
	}
}

func UpdateSettings() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req SettingsRequest
		if e := decodeJSON(r, &req); e != nil {
			return e
		}

		cfg, err := rc.services.Game.UpdateSettings(r.Context(), game.Settings{
			StartNum:    req.StartNum.Ptr(),
			EndNum:      req.EndNum.Ptr(),
			SpecialNum:  req.SpecialNum.Ptr(),
			MagicWord:   req.MagicWord,
			AhoText:     req.AhoText,
			AhoImageURL: req.AhoImageURL,
			AhoSoundURL: req.AhoSoundURL,
		})
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, MessageResponse{Message: "Settings updated successfully", Data: cfg})
	}
}
