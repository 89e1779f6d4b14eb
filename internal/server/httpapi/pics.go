package httpapi

import "net/http"

func (s *Server) handleProgressPicUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.pics.NewUploadURL(r.Context(), requestUserID(r))
	if err != nil {
		s.logger.Error(r.Context(), "progress pic upload failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

func (s *Server) handleProgressPics(w http.ResponseWriter, r *http.Request) {
	urls, err := s.pics.PicURLs(r.Context(), requestUserID(r))
	if err != nil {
		s.logger.Error(r.Context(), "progress pics listing failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeJSON(w, http.StatusOK, urls)
}
