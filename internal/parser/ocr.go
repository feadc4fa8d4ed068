package parser

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog/log"
)

const ocrDPI = "150"

// ocrPDF rasterizes the PDF with pdftoppm and recognizes each page with
// tesseract. Missing tooling or any OCR failure degrades to an empty
// string; the caller treats that as "no text", never an error.
func ocrPDF(filePath string) string {
	pdftoppm, err := exec.LookPath("pdftoppm")
	if err != nil {
		log.Debug().Str("file", filePath).Msg("pdftoppm not installed, skipping OCR")
		return ""
	}

	tmpDir, err := os.MkdirTemp("", "csec-ocr-*")
	if err != nil {
		log.Debug().Err(err).Msg("OCR temp dir creation failed")
		return ""
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command(pdftoppm, "-r", ocrDPI, "-png", filePath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Debug().Err(err).Str("file", filePath).Str("output", string(out)).Msg("pdftoppm failed")
		return ""
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(images) == 0 {
		return ""
	}
	sort.Strings(images)

	client := gosseract.NewClient()
	defer client.Close()

	var pages []string
	for i, image := range images {
		if err := client.SetImage(image); err != nil {
			log.Debug().Err(err).Str("image", image).Msg("OCR set image failed")
			continue
		}
		text, err := client.Text()
		if err != nil {
			log.Debug().Err(err).Str("image", image).Msg("OCR recognition failed")
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, fmt.Sprintf("[Page %d]\n%s", i+1, text))
	}

	return strings.Join(pages, "\n\n")
}
