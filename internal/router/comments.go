package router

import (
	"net/http"

	"github.com/MyelinBots/nabeatsu-go/internal/services/context_manager"
)

func ListComments() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		viewer := context_manager.GetLineUserContext(r.Context())
		views, err := rc.services.Comments.ListTopLevel(r.Context(), viewer, rc.page, rc.sort)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, views)
	}
}

func ListReplies() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		viewer := context_manager.GetLineUserContext(r.Context())
		views, err := rc.services.Comments.ListReplies(r.Context(), rc.commentID, viewer, rc.page)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, views)
	}
}

func CreateComment() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req CreateCommentRequest
		if e := decodeJSON(r, &req); e != nil {
			return e
		}
		// parent_id 0 means top level
		if req.ParentID != nil && *req.ParentID == 0 {
			req.ParentID = nil
		}

		view, err := rc.services.Comments.Create(r.Context(), req.LineUserID, req.Content, req.ParentID)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusCreated, view)
	}
}

func UpdateComment() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req UpdateCommentRequest
		if e := decodeJSON(r, &req); e != nil {
			return e
		}

		view, err := rc.services.Comments.Update(r.Context(), rc.commentID, req.LineUserID, req.Content)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, view)
	}
}

// DeleteComment takes the caller from the line_user_id header.
func DeleteComment() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		caller := context_manager.GetLineUserContext(r.Context())
		if err := rc.services.Comments.Delete(r.Context(), rc.commentID, caller); err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
	}
}

// ToggleLike reads line_user_id from the body, falling back to the header.
func ToggleLike() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req LikeRequest
		if e := decodeJSON(r, &req); e != nil {
			return e
		}
		caller := req.LineUserID
		if caller == "" {
			caller = context_manager.GetLineUserContext(r.Context())
		}

		res, err := rc.services.Likes.Toggle(r.Context(), rc.commentID, caller)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, res)
	}
}
