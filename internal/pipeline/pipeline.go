package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moodline/internal/capture"
	"moodline/internal/classifier"
	"moodline/internal/emotion"
	"moodline/internal/generation"
	"moodline/internal/history"
	"moodline/internal/logging"
)

// InitialSentence is shown until the first generation completes.
const InitialSentence = "Looking for a face..."

// Renderer draws one update: the current sentence, the emotion window,
// and an optional hint describing the last classification failure.
type Renderer interface {
	Render(sentence string, history []emotion.Label, hint string) error
}

// Options wires the pipeline's collaborators.
type Options struct {
	Source     capture.Source
	Classifier classifier.Classifier
	Generator  generation.Generator
	Renderer   Renderer
	History    *history.Buffer
	Mode       emotion.Mode

	ClassifyInterval time.Duration
	GenerateInterval time.Duration

	Logger *slog.Logger
	// Now is the clock used for interval gating. Defaults to time.Now.
	Now func() time.Time
}

// Pipeline drives the capture-classify-generate-render loop. Frames arrive
// at camera rate; classification and generation each run at their own,
// slower cadence behind interval gates.
type Pipeline struct {
	source     capture.Source
	classifier classifier.Classifier
	generator  generation.Generator
	renderer   Renderer
	buffer     *history.Buffer
	mode       emotion.Mode

	classifyInterval time.Duration
	generateInterval time.Duration

	logger *slog.Logger
	now    func() time.Time

	displayed       string
	lastClassifyAt  time.Time
	lastGenerateAt  time.Time
	lastClassifyErr error
}

// New constructs a pipeline from the supplied options.
func New(opts Options) (*Pipeline, error) {
	if opts.Source == nil {
		return nil, errors.New("pipeline: source required")
	}
	if opts.Classifier == nil {
		return nil, errors.New("pipeline: classifier required")
	}
	if opts.Generator == nil {
		return nil, errors.New("pipeline: generator required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("pipeline: renderer required")
	}

	buffer := opts.History
	if buffer == nil {
		buffer = history.New(history.DefaultCapacity)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Pipeline{
		source:           opts.Source,
		classifier:       opts.Classifier,
		generator:        opts.Generator,
		renderer:         opts.Renderer,
		buffer:           buffer,
		mode:             opts.Mode,
		classifyInterval: opts.ClassifyInterval,
		generateInterval: opts.GenerateInterval,
		logger:           logging.NewComponentLogger(logger, "pipeline"),
		now:              now,
		displayed:        InitialSentence,
	}, nil
}

// Run loops until the source ends, the source fails, or the context is
// canceled. Classification, generation, and presentation failures never
// stop the loop.
func (p *Pipeline) Run(ctx context.Context) error {
	p.render()

	for {
		frame, err := p.source.Read(ctx)
		if err != nil {
			if errors.Is(err, capture.ErrStreamEnded) {
				p.logger.Info("stream ended",
					logging.String(logging.FieldEventType, "stream_ended"),
				)
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		changed := p.tick(ctx, frame)
		if changed {
			p.render()
		}
	}
}

// tick applies the classification and generation gates to one frame and
// reports whether displayed state changed. The gate timestamps advance
// before each attempt so a failing service is retried at its own cadence,
// not on every frame.
func (p *Pipeline) tick(ctx context.Context, frame capture.Frame) bool {
	now := p.now()
	changed := false

	if now.Sub(p.lastClassifyAt) >= p.classifyInterval {
		p.lastClassifyAt = now
		label, err := p.classifier.Classify(ctx, frame.Data)
		if err != nil {
			if p.lastClassifyErr == nil || p.lastClassifyErr.Error() != err.Error() {
				changed = true
			}
			p.lastClassifyErr = err
			p.logger.Warn("classification failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "classification_failed"),
				logging.Uint64("frame_seq", frame.Seq),
			)
		} else {
			if p.lastClassifyErr != nil {
				changed = true
			}
			p.lastClassifyErr = nil
			p.buffer.Append(label)
			changed = true
			p.logger.Debug("emotion classified",
				logging.String("label", string(label)),
				logging.Uint64("frame_seq", frame.Seq),
			)
		}
	}

	if now.Sub(p.lastGenerateAt) >= p.generateInterval && !p.buffer.IsEmpty() {
		p.lastGenerateAt = now
		labels := p.buffer.Snapshot()
		tags := p.mode.Sequence(labels)
		prompt := p.mode.Prompt(tags)

		sentence, err := p.generator.Generate(ctx, prompt)
		if err != nil {
			p.displayed = fmt.Sprintf("(generation error: %v)", err)
			p.logger.Warn("generation failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "generation_failed"),
			)
		} else {
			p.displayed = sentence
			p.logger.Debug("sentence generated",
				logging.Int("labels", len(labels)),
				logging.Int("chars", len(sentence)),
			)
		}
		changed = true
	}

	return changed
}

// render pushes the displayed state to the renderer. The hint substitutes
// for an empty history strip only; once labels exist the strip itself is
// the signal. Render errors are logged and absorbed so a flaky output sink
// cannot end an otherwise healthy session.
func (p *Pipeline) render() {
	hint := ""
	if p.lastClassifyErr != nil && p.buffer.IsEmpty() {
		hint = "classifier: " + p.lastClassifyErr.Error()
	}
	if err := p.renderer.Render(p.displayed, p.buffer.Snapshot(), hint); err != nil {
		p.logger.Warn("render failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "render_failed"),
		)
	}
}
