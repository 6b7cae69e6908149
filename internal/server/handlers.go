package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pixie/outfit-stylist/internal/types"
)

// contextBlob is the optional JSON context field of the multipart form.
type contextBlob struct {
	Location string `json:"location"`
	Occasion string `json:"occasion"`
}

// handleRecommend accepts a multipart form with up to MaxImages clothing
// images plus message/location fields and runs the recommendation pipeline.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	req, err := parseRecommendRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Images) == 0 && strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "please provide at least one image or a message")
		return
	}

	response, err := s.recommender.Orchestrate(r.Context(), *req)
	if err != nil {
		log.Printf("Error: recommendation pipeline failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleResult returns a previously computed recommendation by request id.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.sessions == nil {
		s.errorResponse(w, http.StatusNotFound, "result storage not configured")
		return
	}

	response, ok := s.sessions.Get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no result for request id "+id)
		return
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// parseRecommendRequest maps the multipart form onto the pipeline request.
// Location resolution order: location field, then the context JSON blob.
func parseRecommendRequest(r *http.Request) (*types.RecommendRequest, error) {
	req := &types.RecommendRequest{
		Message:  r.FormValue("message"),
		Location: r.FormValue("location"),
	}

	if blob := r.FormValue("context"); blob != "" {
		var parsed contextBlob
		// A malformed blob is ignored, matching the lenient ingress contract.
		if err := json.Unmarshal([]byte(blob), &parsed); err == nil {
			if req.Location == "" {
				req.Location = parsed.Location
			}
			req.Occasion = parsed.Occasion
		}
	}
	if occasion := r.FormValue("occasion"); occasion != "" {
		req.Occasion = occasion
	}

	if r.MultipartForm != nil {
		files := r.MultipartForm.File["images"]
		if len(files) > MaxImages {
			return nil, fmt.Errorf("too many images: %d (max %d)", len(files), MaxImages)
		}
		for _, header := range files {
			image, err := readImage(header)
			if err != nil {
				return nil, err
			}
			req.Images = append(req.Images, *image)
		}
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return req, nil
}

func readImage(header *multipart.FileHeader) (*types.ImageInput, error) {
	if header.Size > MaxImageSize {
		return nil, fmt.Errorf("image %s exceeds the %dMB limit", header.Filename, MaxImageSize>>20)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("image %s exceeds the %dMB limit", header.Filename, MaxImageSize>>20)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &types.ImageInput{Data: data, MimeType: mimeType}, nil
}
