package classifier

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/deepheart/deepheart-api/ensemble"
	"github.com/deepheart/deepheart-api/schema"
)

// Result is the ensemble verdict of one image along with what each model
// reported on its own.
type Result struct {
	Verdict   *schema.EnsembleVerdict
	Primary   schema.ClassifierOutput
	Secondary schema.ClassifierOutput
}

// Described returns a copy of the verdict carrying the description produced
// by describe. The verdict held by r is left untouched.
func (r *Result) Described(describe func(schema.Label) string) *schema.EnsembleVerdict {
	v := *r.Verdict
	v.Description = describe(v.Label)
	return &v
}

// Predictions returns one Prediction per model for the given record.
func (r *Result) Predictions(recordID string, newID func() string) []schema.Prediction {
	outputs := []schema.ClassifierOutput{r.Primary, r.Secondary}
	predictions := make([]schema.Prediction, 0, len(outputs))
	for _, o := range outputs {
		predictions = append(predictions, schema.Prediction{
			ID:          newID(),
			EcgRecordID: recordID,
			ClassName:   o.Label,
			Confidence:  o.Confidence,
			ModelName:   o.Model,
		})
	}
	return predictions
}

// Dual runs two predictors on the same image and combines their outputs.
// Either predictor failing fails the whole prediction. Nothing is retried.
type Dual struct {
	Primary   Predictor
	Secondary Predictor
}

func NewDual(primary, secondary Predictor) *Dual {
	return &Dual{Primary: primary, Secondary: secondary}
}

func (d *Dual) Predict(ctx context.Context, imagePath string) (*Result, error) {
	var primary, secondary *schema.ClassifierOutput

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = d.Primary.Predict(gCtx, imagePath)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = d.Secondary.Predict(gCtx, imagePath)
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithField("prefix", "classifier").WithError(err).Warn("prediction failed")
		return nil, err
	}

	if primary.Model == "" {
		primary.Model = d.Primary.Name()
	}
	if secondary.Model == "" {
		secondary.Model = d.Secondary.Name()
	}

	verdict, err := ensemble.Combine(*primary, *secondary)
	if err != nil {
		log.WithField("prefix", "classifier").WithError(err).Warn("cannot combine classifier outputs")
		return nil, err
	}

	return &Result{
		Verdict:   verdict,
		Primary:   *primary,
		Secondary: *secondary,
	}, nil
}
