package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MyelinBots/nabeatsu-go/internal/services/comments"
	"github.com/gorilla/mux"
)

// parseCommentID reads the {id} path variable.
func parseCommentID() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil || id <= 0 {
			return handleBadRequest(err, ErrInvalidData, "Invalid comment id")
		}
		rc.commentID = uint(id)
		return nil
	}
}

// parsePage reads limit and offset, and sort when withSort is set, from the
// query string.
func parsePage(withSort bool) Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		q := r.URL.Query()

		page := comments.Page{Limit: comments.DefaultLimit}
		var err error
		if v := q.Get("limit"); v != "" {
			if page.Limit, err = strconv.Atoi(v); err != nil {
				return handleBadRequest(err, ErrInvalidData, "Invalid limit or offset")
			}
		}
		if v := q.Get("offset"); v != "" {
			if page.Offset, err = strconv.Atoi(v); err != nil {
				return handleBadRequest(err, ErrInvalidData, "Invalid limit or offset")
			}
		}
		if page.Limit < 0 || page.Limit > comments.MaxLimit || page.Offset < 0 {
			return handleBadRequest(nil, ErrInvalidData, "Invalid limit or offset")
		}
		rc.page = page

		rc.sort = comments.SortNewest
		if withSort && q.Get("sort") != "" {
			rc.sort = q.Get("sort")
		}
		return nil
	}
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) *HTTPError {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return handleBadRequest(err, ErrParsing, "Invalid JSON body")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) *HTTPError {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent, only log
		return &HTTPError{IError: err, Level: 2}
	}
	return nil
}
