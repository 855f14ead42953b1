// Package submit coordinates a single submission round-trip: it builds a
// request from the active input, calls the backend, and keeps the busy/idle
// bracket balanced on every exit path.
package submit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobmatch/internal/input"
	"jobmatch/internal/recommender"
	"jobmatch/internal/render"
)

const (
	minTopK = 1
	maxTopK = 50

	msgNoFile         = "No file selected"
	msgEmptyText      = "Please provide some text describing your skills or experience"
	msgFileUnreadable = "Could not read the selected resume file. Please choose it again."
	msgTransport      = "Could not reach the matching service. Please try again."
)

// Backend is the slice of the recommender client the coordinator needs.
type Backend interface {
	UploadResume(name string, contents io.Reader, topK int) (*recommender.Recommendation, error)
	RecommendText(text string, topK int) (*recommender.Recommendation, error)
}

// Surface applies rendered fragments and state changes to the display. It is
// the only side-effecting collaborator; everything else here is computed.
type Surface interface {
	// BusyEnter hides any previous result and shows the in-flight indicator.
	BusyEnter()
	// BusyExit restores idle visibility. Called exactly once per submission.
	BusyExit()
	ShowResult(fragment string)
	ShowNotice(message string)
}

// Request is built fresh per submission and never mutated after send.
type Request struct {
	ID        string
	Candidate *input.Candidate
	TopK      int
}

type Coordinator struct {
	backend Backend
	inputs  *input.Controller
	surface Surface
	logger  *zap.Logger
	busy    bool
}

func New(backend Backend, inputs *input.Controller, surface Surface, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		backend: backend,
		inputs:  inputs,
		surface: surface,
		logger:  logger,
	}
}

// Busy reports whether a request is in flight. The caller uses it to keep
// the submit trigger disabled; there is no internal queue.
func (c *Coordinator) Busy() bool {
	return c.busy
}

// Submit runs one submission for the active mode. Every outcome (success,
// validation failure, backend rejection, transport failure) ends with the
// surface back in idle state and a visible result or notice. Nothing is
// retried and no error escapes.
func (c *Coordinator) Submit(topK int) {
	if c.busy {
		c.logger.Warn("submission already in flight, ignoring")
		return
	}

	c.busy = true
	c.surface.BusyEnter()
	defer func() {
		c.busy = false
		c.surface.BusyExit()
	}()

	req, err := c.buildRequest(topK)
	if err != nil {
		c.surface.ShowNotice(err.Error())
		return
	}

	c.logger.Debug("submitting",
		zap.String("request_id", req.ID),
		zap.String("mode", req.Candidate.Kind.String()),
		zap.Int("top_k", req.TopK),
	)

	rec, err := c.send(req)
	if err != nil {
		c.surface.ShowNotice(userMessage(err))
		c.logger.Debug("submission failed", zap.String("request_id", req.ID), zap.Error(err))
		return
	}

	c.inputs.Discard()
	c.surface.ShowResult(render.Result(rec))
}

// buildRequest snapshots the active input and validates it without touching
// the network. The topK bound is checked here as well; the backend stays
// authoritative for its own limits.
func (c *Coordinator) buildRequest(topK int) (*Request, error) {
	if topK < minTopK || topK > maxTopK {
		return nil, &input.ValidationError{
			Reason: fmt.Sprintf("Number of results must be between %d and %d", minTopK, maxTopK),
		}
	}

	candidate := c.inputs.Candidate()

	switch c.inputs.Mode() {
	case input.ModeText:
		if candidate == nil || strings.TrimSpace(candidate.Text) == "" {
			return nil, &input.ValidationError{Reason: msgEmptyText}
		}
	default:
		if candidate == nil || candidate.File == nil {
			return nil, &input.ValidationError{Reason: msgNoFile}
		}
	}

	return &Request{
		ID:        uuid.NewString(),
		Candidate: candidate,
		TopK:      topK,
	}, nil
}

func (c *Coordinator) send(req *Request) (*recommender.Recommendation, error) {
	if req.Candidate.Kind == input.ModeText {
		return c.backend.RecommendText(req.Candidate.Text, req.TopK)
	}

	file, err := os.Open(req.Candidate.File.Path)
	if err != nil {
		// The file can vanish between selection and submit; that is a
		// local problem, not a network one.
		return nil, &input.ValidationError{Reason: msgFileUnreadable}
	}
	defer file.Close()

	return c.backend.UploadResume(req.Candidate.File.Name, file, req.TopK)
}

// userMessage maps an error to what the user sees: backend rejections and
// local validation problems verbatim, anything else as a generic transport
// notice.
func userMessage(err error) string {
	var reqErr *recommender.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	var valErr *input.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Reason
	}

	return msgTransport
}
