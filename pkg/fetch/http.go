package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/logger"
	"github.com/getskill/skillshare/pkg/skill"
)

const defaultAttempts = 3

// HTTPFetcher downloads the two files of a skill record from a raw file
// host such as raw.githubusercontent.com
type HTTPFetcher struct {
	client   *http.Client
	attempts uint
}

// HTTPOption configures an HTTPFetcher
type HTTPOption func(*HTTPFetcher)

// WithClient sets a custom HTTP client
func WithClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// WithAttempts sets the per-file retry budget
func WithAttempts(attempts uint) HTTPOption {
	return func(f *HTTPFetcher) {
		f.attempts = attempts
	}
}

// NewHTTPFetcher creates an HTTPFetcher with sane timeouts
func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		attempts: defaultAttempts,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchSkill downloads SKILL.md and skill.yaml from baseURL into
// destDir. baseURL points at the skill's directory on the raw host.
func (f *HTTPFetcher) FetchSkill(ctx context.Context, baseURL, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", destDir)
	}

	for _, name := range []string{skill.DocumentFileName, skill.MetadataFileName} {
		fileURL, err := url.JoinPath(baseURL, name)
		if err != nil {
			return errors.Wrapf(err, "invalid base URL %s", baseURL)
		}

		if err := f.fetchFile(ctx, fileURL, filepath.Join(destDir, name)); err != nil {
			return errors.Wrapf(err, "failed to fetch %s", name)
		}
	}

	return nil
}

// fetchFile downloads a single file with bounded retries and backoff
func (f *HTTPFetcher) fetchFile(ctx context.Context, fileURL, destPath string) error {
	return retry.Do(
		func() error {
			body, err := f.get(ctx, fileURL)
			if err != nil {
				return err
			}
			return os.WriteFile(destPath, body, 0o644)
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.G(ctx).WithError(err).WithField("url", fileURL).Debugf("Retrying download (attempt %d)", n+1)
		}),
	)
}

func (f *HTTPFetcher) get(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// A 404 will not heal on retry
		return nil, retry.Unrecoverable(errors.Errorf("%s not found (404)", fileURL))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d from %s", resp.StatusCode, fileURL)
	}

	return io.ReadAll(resp.Body)
}
