package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"blogfeed/internal/storage"
)

var errTooLarge = errors.New("response body exceeds size limit")

type Fetcher struct {
	client   *http.Client
	storage  storage.Storage
	maxBytes int64
	log      *zap.Logger
}

func NewFetcher(store storage.Storage, timeout time.Duration, maxBytes int64, log *zap.Logger) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		storage:  store,
		maxBytes: maxBytes,
		log:      log,
	}
}

// DownloadAndStore fetches rawURL once and writes the body to key when it is a
// PNG. Nothing is written unless the body passed validation; a failed write may
// leave a partial object behind for the caller to remove.
func (f *Fetcher) DownloadAndStore(ctx context.Context, rawURL, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Kind: KindHTTPStatus, URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := f.readBody(resp.Body)
	if errors.Is(err, errTooLarge) {
		return &FetchError{Kind: KindInvalidImage, URL: rawURL, Err: err}
	}
	if err != nil {
		return &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}

	if !IsValidPNG(body) {
		return &FetchError{Kind: KindInvalidImage, URL: rawURL, MIME: mimetype.Detect(body).String()}
	}

	if err := f.storage.Save(ctx, key, bytes.NewReader(body), int64(len(body))); err != nil {
		return &FetchError{Kind: KindIO, URL: rawURL, Err: err}
	}

	f.log.Debug("remote image stored",
		zap.String("url", rawURL),
		zap.String("key", key),
		zap.Int("bytes", len(body)),
	)

	return nil
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", errTooLarge, f.maxBytes)
	}

	return body, nil
}
