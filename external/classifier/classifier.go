package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/deepheart/deepheart-api/ensemble"
	"github.com/deepheart/deepheart-api/schema"
)

var (
	ErrClassifierFailed = errors.New("classifier failed")
	ErrEmptyOutput      = errors.New("classifier produced no output")
)

// Predictor classifies one ECG image.
type Predictor interface {
	Name() string
	Predict(ctx context.Context, imagePath string) (*schema.ClassifierOutput, error)
}

type modelInfo struct {
	ModelType string `json:"model_type"`
}

type response struct {
	Classification schema.Label               `json:"classification"`
	Confidence     float64                    `json:"confidence"`
	Probabilities  *schema.ClassProbabilities `json:"probabilities"`
	ModelInfo      *modelInfo                 `json:"model_info"`
	Error          string                     `json:"error"`
}

// processPredictor runs `<interpreter> <script> <image>` and reads the
// result from the last JSON object printed on stdout.
type processPredictor struct {
	name        string
	interpreter string
	script      string
	timeout     time.Duration
}

func (p *processPredictor) Name() string {
	return p.name
}

func (p *processPredictor) Predict(ctx context.Context, imagePath string) (*schema.ClassifierOutput, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.interpreter, p.script, imagePath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.WithField("prefix", "classifier").
		WithField("model", p.name).
		WithField("elapsed", time.Since(start).String()).
		Debug("classifier process finished")

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %s", ErrClassifierFailed, p.name, err, strings.TrimSpace(stderr.String()))
	}

	return parseOutput(p.name, stdout.Bytes())
}

// NewProcessPredictor returns a Predictor backed by an external script.
func NewProcessPredictor(name, interpreter, script string, timeout time.Duration) Predictor {
	return &processPredictor{
		name:        name,
		interpreter: interpreter,
		script:      script,
		timeout:     timeout,
	}
}

// lastJSONLine returns the last line of out that looks like a JSON object.
// Model libraries print progress lines before the result.
func lastJSONLine(out []byte) []byte {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if bytes.HasPrefix(line, []byte("{")) {
			return line
		}
	}
	return nil
}

func parseOutput(name string, out []byte) (*schema.ClassifierOutput, error) {
	line := lastJSONLine(out)
	if line == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyOutput, name)
	}

	var r response
	if err := json.Unmarshal(line, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ensemble.ErrMalformedClassifierOutput, name, err)
	}

	if r.Error != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrClassifierFailed, name, r.Error)
	}

	if r.Probabilities == nil {
		return nil, fmt.Errorf("%w: %s: missing probabilities", ensemble.ErrMalformedClassifierOutput, name)
	}

	model := name
	if r.ModelInfo != nil && r.ModelInfo.ModelType != "" {
		model = r.ModelInfo.ModelType
	}

	return &schema.ClassifierOutput{
		Label:         r.Classification,
		Confidence:    r.Confidence,
		Probabilities: *r.Probabilities,
		Model:         model,
	}, nil
}
