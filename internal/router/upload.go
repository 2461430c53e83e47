package router

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// Upload stores the multipart "file" field and answers with its public URL.
func Upload() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		if rc.services.MaxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, rc.services.MaxUploadBytes)
		}

		file, hdr, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return &HTTPError{
					IError:    err,
					Level:     1,
					Status:    http.StatusRequestEntityTooLarge,
					Message:   "File too large",
					ErrorCode: ErrInvalidData,
				}
			}
			return handleBadRequest(err, ErrInvalidData, "No file uploaded.")
		}
		defer file.Close()
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		name, err := rc.services.Uploads.Save(r.Context(), hdr.Filename, file)
		if err != nil {
			return fromError(err)
		}
		return writeJSON(w, http.StatusOK, UploadResponse{URL: publicURL(r, name)})
	}
}

// publicURL prefers the first X-Forwarded-Proto value over the connection's
// own scheme.
func publicURL(r *http.Request, filename string) string {
	proto := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0])
	if proto == "" {
		proto = "http"
		if r.TLS != nil {
			proto = "https"
		}
	}
	return proto + "://" + r.Host + "/uploads/" + url.PathEscape(filename)
}
