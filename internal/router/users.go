package router

import (
	"net/http"

	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
)

// Login creates or refreshes the user behind line_user_id.
func Login() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req LoginRequest
		if e := decodeJSON(r, &req); e != nil {
			return e
		}
		id := req.LineUserID
		if id == "" {
			id = req.ExternalID
		}

		u, err := rc.services.Users.Login(r.Context(), users.LoginInput{
			LineUserID:  id,
			DisplayName: req.DisplayName,
			PictureURL:  req.PictureURL,
		})
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, u)
	}
}
