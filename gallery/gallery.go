package gallery

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"locallens/tours"
	"locallens/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const tourPicUploadDir = "./static/tourpic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func generateFilePath(dir, uniqueID, ext string) string {
	return filepath.Join(dir, uniqueID+"."+ext)
}

func processTourImageUpload(file *multipart.FileHeader, tourID string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := tourID + "-" + utils.GenerateRandomString(12)
	originalPath := generateFilePath(tourPicUploadDir, uniqueID, "jpg")
	thumbDir := filepath.Join(tourPicUploadDir, "thumb")
	thumbnailPath := generateFilePath(thumbDir, uniqueID, "jpg")

	if err := ensureDirExists(tourPicUploadDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 480, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/tourpic/" + uniqueID + ".jpg", nil
}

// POST /api/admin/tours/:tourid/photos
func UploadTourPhotos(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tourID := ps.ByName("tourid")
	if _, ok := tours.Get(tourID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No photos provided")
		return
	}

	var savedPaths []string
	for _, file := range files {
		ct := file.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "image/") {
			utils.RespondWithError(w, http.StatusBadRequest, "Only image uploads are allowed")
			return
		}
		path, err := processTourImageUpload(file, tourID)
		if err != nil {
			log.Printf("tour photo upload failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process image")
			return
		}
		savedPaths = append(savedPaths, path)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "photos": savedPaths})
}

// GET /api/tours/tour/:tourid/photos
func ListTourPhotos(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tourID := ps.ByName("tourid")
	if _, ok := tours.Get(tourID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	matches, err := filepath.Glob(filepath.Join(tourPicUploadDir, tourID+"-*.jpg"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	photos := []string{}
	for _, m := range matches {
		photos = append(photos, "/tourpic/"+filepath.Base(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"photos": photos})
}
