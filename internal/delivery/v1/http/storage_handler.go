package http

import (
	"errors"
	"net/http"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// StorageHandler принимает изображения товаров через multipart/form-data
// и складывает их в объектное хранилище.
type StorageHandler struct {
	imagesInfra usecase.ImagesInfra
	logger      logger.Logger
}

func NewStorageHandler(imagesInfra usecase.ImagesInfra, logger logger.Logger) *StorageHandler {
	return &StorageHandler{imagesInfra: imagesInfra, logger: logger}
}

func (h *StorageHandler) uploadImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	if h.imagesInfra == nil {
		h.logger.Warnf("image upload requested but storage is not configured")
		WriteError(w, e.ErrInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		WriteError(w, e.ErrNameRequired)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		if !errors.Is(err, e.ErrNoImages) {
			h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		}
		WriteError(w, err)
		return
	}

	res, err := h.imagesInfra.UploadImages(r.Context(), usecase.NewUploadImagesReq(name, images))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"keys": res.ImagesKeys,
	})
}
