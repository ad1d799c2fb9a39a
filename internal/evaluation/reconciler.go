// Package evaluation reconciles untrusted model replies into complete
// evaluation results.
package evaluation

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
)

// DefaultTotalMarks is used when neither the reply, the request nor the
// question list yields a total.
const DefaultTotalMarks = 100

var fallbackCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ead",
	Subsystem: "evaluation",
	Name:      "fallback_total",
	Help:      "Number of evaluations answered by the length-based fallback",
}, []string{"reason"})

// Reconciler turns raw generated text into an EvaluationResult.
type Reconciler struct {
	extractor CandidateExtractor
	fallback  FallbackEvaluator
	clamp     bool
	now       func() time.Time
	newID     func() string
	logger    zerolog.Logger
}

// Option customises a Reconciler.
type Option func(*Reconciler)

// WithExtractor swaps the candidate extraction strategy.
func WithExtractor(extractor CandidateExtractor) Option {
	return func(r *Reconciler) {
		if extractor != nil {
			r.extractor = extractor
		}
	}
}

// WithClamping toggles clamping of model-supplied marks and percentages.
func WithClamping(enabled bool) Option {
	return func(r *Reconciler) {
		r.clamp = enabled
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(r *Reconciler) {
		if newID != nil {
			r.newID = newID
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger.With().Str("component", "evaluation_reconciler").Logger()
	}
}

// NewReconciler builds a Reconciler using greedy extraction and clamping by default.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		extractor: GreedyExtractor{},
		clamp:     true,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile extracts, defaults and completes an evaluation. Extraction
// failures are absorbed by the fallback evaluator; the only error returned is
// the fallback's ConfigurationError for a non-positive total.
func (r *Reconciler) Reconcile(raw string, req dto.EvaluationRequest) (dto.EvaluationResult, error) {
	record, err := r.extract(raw)
	if err != nil {
		record, err = r.fallback.Evaluate(req.AssessmentData, fallbackTotalMarks(req))
		if err != nil {
			return dto.EvaluationResult{}, err
		}
	}

	if r.clamp {
		clampQuestions(record.Questions)
	}

	result := dto.EvaluationResult{
		ID:                  r.newID(),
		AssessmentData:      req.AssessmentData,
		TotalMarksObtained:  record.TotalMarksObtained,
		TotalMarks:          resolveTotalMarks(record, req),
		Percentage:          record.Percentage,
		Grade:               record.Grade,
		OverallFeedback:     record.OverallFeedback,
		QuestionEvaluations: record.Questions,
		Strengths:           record.Strengths,
		AreasForImprovement: record.AreasForImprovement,
		Suggestions:         record.Suggestions,
		EvaluationCriteria:  record.EvaluationCriteria,
		CreatedAt:           r.now(),
		Status:              dto.StatusCompleted,
	}

	if r.clamp {
		clampTotals(&result)
	}

	return result, nil
}

type extractionFailure struct {
	reason string
	err    error
}

func (e *extractionFailure) Error() string {
	if e.err == nil {
		return e.reason
	}
	return e.reason + ": " + e.err.Error()
}

func (r *Reconciler) extract(raw string) (Record, error) {
	candidate, ok := r.extractor.ExtractCandidate(raw)
	if !ok {
		fallbackCounter.WithLabelValues("no_json").Inc()
		r.logger.Warn().Int("reply_length", len(raw)).Msg("no json object in model reply, using fallback evaluation")
		return Record{}, &extractionFailure{reason: "no_json"}
	}

	record, err := parseRecord(candidate)
	if err != nil {
		fallbackCounter.WithLabelValues("invalid_json").Inc()
		r.logger.Warn().Err(err).Int("reply_length", len(raw)).Msg("malformed json in model reply, using fallback evaluation")
		return Record{}, &extractionFailure{reason: "invalid_json", err: err}
	}

	return record, nil
}

func fallbackTotalMarks(req dto.EvaluationRequest) int {
	if req.TotalMarks != nil {
		return *req.TotalMarks
	}
	return DefaultTotalMarks
}

// resolveTotalMarks prefers the reply's numeric total, then the caller's
// total, then the sum of question maxima, then DefaultTotalMarks.
func resolveTotalMarks(record Record, req dto.EvaluationRequest) int {
	switch {
	case record.HasTotalMarks:
		return int(record.TotalMarks)
	case req.TotalMarks != nil:
		return *req.TotalMarks
	case len(record.Questions) > 0:
		sum := 0.0
		for _, q := range record.Questions {
			sum += q.MaxMarks
		}
		if !integral(sum) {
			return DefaultTotalMarks
		}
		return int(sum)
	default:
		return DefaultTotalMarks
	}
}

func clampQuestions(questions []dto.QuestionEvaluation) {
	for i := range questions {
		q := &questions[i]
		if q.MaxMarks < 0 {
			q.MaxMarks = 0
		}
		if q.MarksObtained < 0 {
			q.MarksObtained = 0
		}
		if q.MarksObtained > q.MaxMarks {
			q.MarksObtained = q.MaxMarks
		}
	}
}

func clampTotals(result *dto.EvaluationResult) {
	if result.TotalMarks < 0 {
		result.TotalMarks = 0
	}
	if result.TotalMarksObtained < 0 {
		result.TotalMarksObtained = 0
	}
	if result.TotalMarks > 0 && result.TotalMarksObtained > float64(result.TotalMarks) {
		result.TotalMarksObtained = float64(result.TotalMarks)
	}
	switch {
	case result.Percentage < 0:
		result.Percentage = 0
	case result.Percentage > 100:
		result.Percentage = 100
	}
}
