package scene

import (
	"fmt"

	"github.com/okrete/kinema/internal/binder"
	"github.com/okrete/kinema/internal/cue"
	"github.com/okrete/kinema/internal/interp"
	"github.com/okrete/kinema/internal/style"
)

// Scene is a compiled, ready-to-run scene: the element document plus one
// binder per element, scoped to that element's progress range.
type Scene struct {
	Title   string
	FPS     int
	Doc     *style.Document
	Binders []*binder.Binder
	Stops   *cue.List
}

// Compile validates the config and builds the document and binders.
// Every configuration error (bad value syntax, mismatched units, unknown
// easing, duplicate ids) surfaces here, before any frame runs.
func Compile(cfg *Config) (*Scene, error) {
	doc := style.NewDocument()
	var binders []*binder.Binder

	for _, ec := range cfg.Elements {
		if ec.ID == "" {
			return nil, fmt.Errorf("element with empty id")
		}
		if err := doc.Add(style.NewElement(ec.ID, ec.Label)); err != nil {
			return nil, err
		}

		configs, err := compileTracks(ec)
		if err != nil {
			return nil, err
		}
		multi, err := interp.NewMulti(configs)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", ec.ID, err)
		}

		el, err := doc.ElementByID(ec.ID)
		if err != nil {
			return nil, err
		}
		b, err := binder.New(el, multi)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", ec.ID, err)
		}
		b.SetProgressRange(ec.From, ec.To)
		binders = append(binders, b)
	}

	stops := make([]cue.Stop, len(cfg.Bookmarks))
	for i, bm := range cfg.Bookmarks {
		stops[i] = cue.Stop{Name: bm.Name, Progress: bm.Progress}
	}

	return &Scene{
		Title:   cfg.Title,
		FPS:     cfg.FPS,
		Doc:     doc,
		Binders: binders,
		Stops:   cue.New(stops),
	}, nil
}

// Update drives every binder with the given global progress.
func (s *Scene) Update(progress float64) {
	for _, b := range s.Binders {
		b.Update(progress)
	}
}

func compileTracks(ec ElementConfig) ([]interp.Config, error) {
	configs := make([]interp.Config, 0, len(ec.Tracks))
	for _, tc := range ec.Tracks {
		if tc.Property == "" {
			return nil, fmt.Errorf("element %q: track with empty property", ec.ID)
		}
		segments := make([]interp.Segment, 0, len(tc.Keyframes))
		for _, kf := range tc.Keyframes {
			seg, err := compileKeyframe(kf)
			if err != nil {
				return nil, fmt.Errorf("element %q, property %q: %w", ec.ID, tc.Property, err)
			}
			segments = append(segments, seg)
		}
		configs = append(configs, interp.Config{ID: tc.Property, Segments: segments})
	}
	return configs, nil
}

func compileKeyframe(kf KeyframeConfig) (interp.Segment, error) {
	start, err := valueOf(kf.Start)
	if err != nil {
		return interp.Segment{}, err
	}
	end, err := valueOf(kf.End)
	if err != nil {
		return interp.Segment{}, err
	}
	var easing interp.EasingFunc
	if kf.Easing != "" {
		easing, err = interp.EasingByName(kf.Easing)
		if err != nil {
			return interp.Segment{}, err
		}
	}
	return interp.NewSegment(interp.Range{From: kf.From, To: kf.To}, start, end, easing)
}

// valueOf converts a YAML scalar (number or unit string) to a Value.
func valueOf(v any) (interp.Value, error) {
	switch x := v.(type) {
	case nil:
		return interp.Value{}, fmt.Errorf("missing keyframe value")
	case int:
		return interp.Number(float64(x)), nil
	case int64:
		return interp.Number(float64(x)), nil
	case float64:
		return interp.Number(x), nil
	case string:
		return interp.ParseValue(x)
	default:
		return interp.Value{}, fmt.Errorf("unsupported keyframe value %v (%T)", v, v)
	}
}
