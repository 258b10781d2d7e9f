package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mcoot/crosswordgen/internal/api/apierr"
	"github.com/mcoot/crosswordgen/internal/services/generator"
	"github.com/mcoot/crosswordgen/internal/services/placement"
)

// MaxBodyBytes limits request bodies
const MaxBodyBytes = 1 << 20

// GenerateOptions are the generation settings shared by both puzzle endpoints
type GenerateOptions struct {
	MaxHeight      int    `json:"max_height,omitempty"`
	MaxWidth       int    `json:"max_width,omitempty"`
	MaxRetryRounds *int   `json:"max_retry_rounds,omitempty"`
	BoundsPolicy   string `json:"bounds_policy,omitempty"`
	Refresh        bool   `json:"refresh,omitempty"`
}

// Options validates and converts the request to generator options
func (o GenerateOptions) Options() (generator.Options, error) {
	opts := generator.DefaultOptions()
	if o.MaxHeight < 0 || o.MaxWidth < 0 {
		return opts, apierr.NewInvalidRequestError("max_height and max_width must not be negative")
	}
	opts.MaxHeight = o.MaxHeight
	opts.MaxWidth = o.MaxWidth

	if o.MaxRetryRounds != nil {
		if *o.MaxRetryRounds < 0 {
			return opts, apierr.NewInvalidRequestError("max_retry_rounds must not be negative")
		}
		opts.MaxRetryRounds = *o.MaxRetryRounds
	}

	policy, err := placement.ParseBoundsPolicy(o.BoundsPolicy)
	if err != nil {
		return opts, apierr.NewInvalidRequestError(fmt.Sprintf("unknown bounds_policy %q: use filter, skip or abort", o.BoundsPolicy))
	}
	opts.BoundsPolicy = policy
	opts.Refresh = o.Refresh
	return opts, nil
}

// GeneratePuzzleRequest is the request body for generating a puzzle from
// an inline word list
type GeneratePuzzleRequest struct {
	Words []string `json:"words"`
	GenerateOptions
}

// PutWordListRequest is the request body for storing a word list
type PutWordListRequest struct {
	Words []string `json:"words"`
}

// Decode reads a JSON body into v. An empty body leaves v unchanged when
// allowEmpty is set.
func Decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return apierr.NewInvalidRequestError("Invalid request body")
	}
	return nil
}
