package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/emergency15/internal/client/models"
)

// mediaOrder fixes the part order of the multipart body.
var mediaOrder = []models.MediaKind{models.MediaImage, models.MediaVideo, models.MediaAudio}

// SaveLeadMedia uploads evidence files for a lead as multipart/form-data.
// Files are opened up front, so a missing file fails before any request is
// sent, then streamed through a pipe.
func (c *HTTPClient) SaveLeadMedia(ctx context.Context, ev models.Evidence) error {
	if err := models.Check(ev); err != nil {
		return err
	}

	type part struct {
		kind models.MediaKind
		file *os.File
	}
	var parts []part
	defer func() {
		for _, p := range parts {
			_ = p.file.Close()
		}
	}()

	for k := range ev.Files {
		if !slices.Contains(mediaOrder, k) {
			return fmt.Errorf("unknown evidence slot %q", k)
		}
	}
	for _, k := range mediaOrder {
		path := ev.Files[k]
		if path == "" {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", k, err)
		}
		parts = append(parts, part{kind: k, file: f})
	}
	if len(parts) == 0 {
		return fmt.Errorf("no evidence files for lead %d", ev.LeadID)
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	done := make(chan struct{})

	go func() {
		defer close(done)
		err := func() error {
			if err := mw.WriteField("lead_id", strconv.FormatInt(ev.LeadID, 10)); err != nil {
				return err
			}
			for _, p := range parts {
				h := make(textproto.MIMEHeader)
				h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
					string(p.kind), filepath.Base(p.file.Name())))
				h.Set("Content-Type", p.kind.ContentType())
				w, err := mw.CreatePart(h)
				if err != nil {
					return err
				}
				if _, err := io.Copy(w, p.file); err != nil {
					return err
				}
			}
			return mw.Close()
		}()
		_ = pw.CloseWithError(err)
	}()

	req, reqID, err := c.newRequest(ctx, EndpointSaveLeadsMedia, pr, mw.FormDataContentType())
	if err != nil {
		_ = pr.CloseWithError(err)
		<-done
		return err
	}
	err = c.do(req, EndpointSaveLeadsMedia, reqID, nil)
	// unblock the writer if the server answered before reading everything
	_ = pr.Close()
	<-done
	return err
}
