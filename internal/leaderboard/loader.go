package leaderboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// DefaultURL is the published leaderboard CSV.
const DefaultURL = "https://raw.githubusercontent.com/dog-broad/Test-Repo/main/CurrentCodeRankingLeaderboard.csv"

// FailureKind classifies why a load did not produce rows.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureStatus
	FailureRead
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureRead:
		return "read"
	case FailureParse:
		return "parse"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// AfterResponse reports whether the failure happened once a response had
// arrived, i.e. the viewport can still be sampled for that load.
func (k FailureKind) AfterResponse() bool {
	return k == FailureStatus || k == FailureRead || k == FailureParse
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "unexpected response status: " + e.Status
	}
	return fmt.Sprintf("unexpected response status: %d", e.Code)
}

// Result is the outcome of one load: rows on success, a reason on failure.
type Result struct {
	Rows    []Row
	Failure FailureKind
	Err     error
}

// OK reports whether the load succeeded.
func (r Result) OK() bool {
	return r.Failure == FailureNone && r.Err == nil
}

// Loader fetches and parses the leaderboard document.
type Loader struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewLoader creates a loader for url using http.DefaultClient.
func NewLoader(url string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		URL:    url,
		Client: http.DefaultClient,
		Logger: logger,
	}
}

// Load performs a single GET and parses the body. It never retries. Any
// deadline comes from ctx. Failures are logged and returned in the Result.
func (l *Loader) Load(ctx context.Context) Result {
	res := l.load(ctx)
	if !res.OK() {
		l.logger().Error("Failed to load leaderboard",
			zap.String("url", l.URL),
			zap.Stringer("reason", res.Failure),
			zap.Error(res.Err))
		return res
	}
	l.logger().Debug("Leaderboard loaded",
		zap.String("url", l.URL),
		zap.Int("rows", len(res.Rows)))
	return res
}

func (l *Loader) load(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return Result{Failure: FailureTransport, Err: fmt.Errorf("build request: %w", err)}
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Failure: FailureTransport, Err: fmt.Errorf("fetch leaderboard: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Result{Failure: FailureStatus, Err: &StatusError{Code: resp.StatusCode, Status: resp.Status}}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Failure: FailureRead, Err: fmt.Errorf("read leaderboard body: %w", err)}
	}

	rows, err := Parse(bytes.NewReader(body))
	if err != nil {
		return Result{Failure: FailureParse, Err: err}
	}
	return Result{Rows: rows}
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
