package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/internal/storage"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

// profileImageField is the multipart part name the original clients send.
const profileImageField = "imagen"

type AuthHandler struct {
	service       *service.AuthService
	uploads       *storage.UploadStore
	maxUploadSize int64
}

func NewAuthHandler(service *service.AuthService, uploads *storage.UploadStore, maxUploadSize int64) *AuthHandler {
	return &AuthHandler{service: service, uploads: uploads, maxUploadSize: maxUploadSize}
}

// Register accepts a multipart form with an optional profile image, or a
// plain JSON body when no image is attached.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid multipart body", "", http.StatusBadRequest))
			return
		}

		payload = model.RegisterRequest{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
			Role:     r.FormValue("role"),
			Name:     r.FormValue("name"),
			Lastname: r.FormValue("lastname"),
			Username: r.FormValue("userName"),
			Phone:    r.FormValue("phone"),
			Address:  r.FormValue("address"),
		}

		file, header, err := r.FormFile(profileImageField)
		if err == nil {
			defer file.Close()
			url, saveErr := h.uploads.Save(file, header.Filename)
			if saveErr != nil {
				slog.Error("register: save profile image", "error", saveErr.Error())
				writeError(w, apierror.New("INTERNAL_ERROR", "internal server error", "", http.StatusInternalServerError))
				return
			}
			payload.ProfileImageURL = url
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
			return
		}
	}

	accountID, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{
		Message:   "user registered successfully",
		AccountID: accountID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	tokens, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	tokens, err := h.service.Refresh(payload.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}
