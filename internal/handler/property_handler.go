package handler

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/internal/storage"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

const (
	propertyImagesField = "images"
	maxPropertyImages   = 10
)

type PropertyHandler struct {
	service       *service.PropertyService
	uploads       *storage.UploadStore
	maxUploadSize int64
}

func NewPropertyHandler(service *service.PropertyService, uploads *storage.UploadStore, maxUploadSize int64) *PropertyHandler {
	return &PropertyHandler{service: service, uploads: uploads, maxUploadSize: maxUploadSize}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

// Create accepts a multipart form carrying up to ten listing images, or a
// plain JSON body without images.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePropertyRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid multipart body", "", http.StatusBadRequest))
			return
		}

		payload = model.CreatePropertyRequest{
			Title:       r.FormValue("title"),
			CategoryID:  formInt(r, "categoryId"),
			Address:     r.FormValue("address"),
			Latitude:    formFloat(r, "latitude"),
			Longitude:   formFloat(r, "longitude"),
			Price:       formFloat(r, "price"),
			Description: r.FormValue("description"),
			OwnerID:     r.FormValue("ownerId"),
		}

		urls, err := h.saveImages(r.MultipartForm.File[propertyImagesField])
		if err != nil {
			slog.Error("create property: save images", "error", err.Error())
			writeError(w, apierror.New("INTERNAL_ERROR", "internal server error", "", http.StatusInternalServerError))
			return
		}
		payload.ImageURLs = urls
	} else {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
			return
		}
	}

	propertyID, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{
		Message:    "property created successfully",
		PropertyID: propertyID,
	})
}

// Update applies a partial update addressed by currentTitle; new images are
// appended, never replaced.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdatePropertyRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid multipart body", "", http.StatusBadRequest))
			return
		}

		payload.CurrentTitle = r.FormValue("currentTitle")
		payload.Title = formOptional(r, "title")
		payload.Description = formOptional(r, "description")
		if raw := formOptional(r, "price"); raw != nil {
			if price, err := strconv.ParseFloat(*raw, 64); err == nil {
				payload.Price = &price
			}
		}

		urls, err := h.saveImages(r.MultipartForm.File[propertyImagesField])
		if err != nil {
			slog.Error("update property: save images", "error", err.Error())
			writeError(w, apierror.New("INTERNAL_ERROR", "internal server error", "", http.StatusInternalServerError))
			return
		}
		payload.ImageURLs = urls
	} else {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
			return
		}
	}

	propertyID, err := h.service.Update(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Message:    "property updated successfully",
		PropertyID: propertyID,
	})
}

func (h *PropertyHandler) Details(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.Details(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *PropertyHandler) saveImages(headers []*multipart.FileHeader) ([]string, error) {
	if len(headers) > maxPropertyImages {
		headers = headers[:maxPropertyImages]
	}

	urls := make([]string, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		url, err := h.uploads.Save(file, header.Filename)
		_ = file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	return v
}

func formFloat(r *http.Request, key string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue(key)), 64)
	return v
}

func formOptional(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
