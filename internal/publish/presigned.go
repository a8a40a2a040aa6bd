package publish

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
)

// UploadToURL PUTs a single file to a pre-signed URL, for callers that hand
// out upload URLs instead of bucket credentials.
func UploadToURL(ctx context.Context, client *http.Client, file, url string) error {
	logger := ctxlog.FromContext(ctx).With("action", "upload")

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open source file '%s': %w", file, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file stats for '%s': %w", file, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, f)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	contentType := ContentType(file)
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = stat.Size()

	logger.Info("Uploading file to pre-signed URL.", "source", file, "size", stat.Size(), "contentType", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed with status: %s", resp.Status)
	}
	logger.Info("Successfully uploaded file.", "status", resp.Status)
	return nil
}
