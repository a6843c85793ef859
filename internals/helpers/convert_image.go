package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Batas sisi terpanjang foto galeri setelah konversi
const DefaultMaxImageSide = 1600

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

// ConvertToWebP membaca file upload, menurunkan resolusi bila melebihi
// maxSide (aspect ratio dijaga, Lanczos), lalu encode ke WebP lossy q85.
func ConvertToWebP(fh *multipart.FileHeader, maxSide int) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := DecodeImage(all, fh.Filename)
	if err != nil {
		return nil, err
	}

	if maxSide <= 0 {
		maxSide = DefaultMaxImageSide
	}
	b := img.Bounds()
	if b.Dx() > maxSide || b.Dy() > maxSide {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return buf.Bytes(), nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}
