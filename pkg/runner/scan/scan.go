package scan

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"

	"github.com/prodipto2001/journal-stitch/pkg/journal"
	"github.com/prodipto2001/journal-stitch/pkg/ocr"
	"github.com/prodipto2001/journal-stitch/pkg/printers"
	"github.com/prodipto2001/journal-stitch/pkg/scan"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

// Scan runs a captured image file through the OCR pipeline and commits the
// resulting memory.
type Scan struct {
	File   string
	APIKey string

	Persistence store.Persistence
}

func (n *Scan) Do(ctx context.Context) error {
	if n.File == "" {
		return errors.New("can not scan, no image file given")
	}

	raw, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("scan: read %s: %w", n.File, err)
	}
	src := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(raw), base64.StdEncoding.EncodeToString(raw))

	j := journal.Load(n.Persistence)

	faint := color.New(color.Faint)
	pipeline := scan.New(ocr.New(n.APIKey), j, func(s scan.Status) {
		if s.Message != "" {
			_, _ = faint.Println(s.Message)
		}
	})

	e, err := pipeline.Scan(ctx, src)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Detail(&e)

	return nil
}
