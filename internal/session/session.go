package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"PriceSlider/internal/config"
	"PriceSlider/internal/dataset"
	"PriceSlider/internal/model"
	"PriceSlider/internal/notifier"
	"PriceSlider/internal/recorder"
	"PriceSlider/internal/slider"

	"go.uber.org/zap"
)

var (
	// ErrUnknownAction is returned for a command the session does not know.
	ErrUnknownAction = errors.New("unknown action")
	// ErrBadArguments is returned when a command has the wrong arguments.
	ErrBadArguments = errors.New("bad arguments")
)

// Session hosts one slider engine: it turns text commands into gestures and
// setter calls and forwards the engine's notifications to a recorder.
type Session struct {
	Engine   *slider.Engine
	Recorder recorder.Recorder
	log      *zap.Logger
}

// New builds a session from configuration. rec and log may be nil.
func New(cfg *config.Config, rec recorder.Recorder, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}

	src := cfg.DatasetProvider()
	values, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Debug("dataset loaded", zap.String("source", src.Name()), zap.Int("buckets", len(values)))

	s := &Session{Recorder: rec, log: log}
	opts := append(EngineOptions(cfg, values),
		slider.WithLogger(log),
		slider.OnValueChanged(s.valueChanged),
		slider.OnStepChanged(s.stepChanged),
		slider.OnTrackingStarted(func(h model.Handle) { s.gesture(h, "start") }),
		slider.OnTrackingEnded(func(h model.Handle) { s.gesture(h, "end") }),
	)
	s.Engine = slider.New(opts...)
	return s, nil
}

// EngineOptions translates configuration into engine options. A zero maximum
// distance means no limit.
func EngineOptions(cfg *config.Config, values []int) []slider.Option {
	opts := []slider.Option{
		// the maximum is a placeholder: the non-empty dataset sets it to step*(len-1)
		slider.WithRange(cfg.Slider.MinValue, slider.DefaultMaxValue),
		slider.WithStep(cfg.Slider.Step),
		slider.WithQuantization(cfg.QuantizationEnabled()),
		slider.WithMinDistance(cfg.Slider.MinDistance),
		slider.WithTickCount(cfg.Slider.TickCount),
		slider.WithAppearance(model.Appearance{
			TrackColor:        cfg.Appearance.TrackColor,
			HighlightColor:    cfg.Appearance.HighlightColor,
			InitialColor:      cfg.Appearance.InitialColor,
			HandleColor:       cfg.Appearance.HandleColor,
			HandleDiameter:    cfg.Appearance.HandleDiameter,
			HandleBorderWidth: cfg.Appearance.HandleBorderWidth,
			LineHeight:        cfg.Appearance.LineHeight,
		}),
		slider.WithBounds(cfg.Layout.Width, cfg.Layout.Height),
		slider.WithDataset(values),
	}
	if cfg.Slider.MaxDistance > 0 {
		opts = append(opts, slider.WithMaxDistance(cfg.Slider.MaxDistance))
	}
	return opts
}

// Apply executes one command line and returns the resulting engine state.
func (s *Session) Apply(line string) (model.Snapshot, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.Engine.Snapshot(), nil
	}
	action, args := fields[0], fields[1:]
	e := s.Engine

	switch action {
	case "start":
		p, err := parsePoint(action, args)
		if err != nil {
			return e.Snapshot(), err
		}
		if !e.BeginTracking(p) {
			s.log.Debug("touch missed both handles", zap.Float64("x", p.X), zap.Float64("y", p.Y))
		}
	case "move":
		p, err := parsePoint(action, args)
		if err != nil {
			return e.Snapshot(), err
		}
		if !e.ContinueTracking(p) {
			s.log.Debug("move ignored, no active handle")
		}
	case "end":
		e.EndTracking()
	case "drag":
		if len(args) != 2 {
			return e.Snapshot(), fmt.Errorf("%s: want <left|right> <value>: %w", action, ErrBadArguments)
		}
		h, err := parseHandle(args[0])
		if err != nil {
			return e.Snapshot(), fmt.Errorf("%s: %w", action, err)
		}
		v, err := parseFloats(action, args[1:], 1)
		if err != nil {
			return e.Snapshot(), err
		}
		s.drag(h, v[0])
	case "select":
		v, err := parseFloats(action, args, 2)
		if err != nil {
			return e.Snapshot(), err
		}
		return e.SetSelectedRange(v[0], v[1]), nil
	case "dataset":
		if len(args) != 1 {
			return e.Snapshot(), fmt.Errorf("%s: want v1,v2,...: %w", action, ErrBadArguments)
		}
		values, err := dataset.Parse(args[0])
		if err != nil {
			return e.Snapshot(), fmt.Errorf("%s: %w", action, err)
		}
		return e.SetDataset(values), nil
	case "bounds":
		v, err := parseFloats(action, args, 2)
		if err != nil {
			return e.Snapshot(), err
		}
		e.SetBounds(v[0], v[1])
	case "min-value", "max-value", "min-distance", "max-distance", "step":
		v, err := parseFloats(action, args, 1)
		if err != nil {
			return e.Snapshot(), err
		}
		return s.setNumber(action, v[0]), nil
	case "ticks":
		if len(args) != 1 {
			return e.Snapshot(), fmt.Errorf("%s: want <count>: %w", action, ErrBadArguments)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return e.Snapshot(), fmt.Errorf("%s: %w", action, err)
		}
		return e.SetTickCount(n), nil
	case "quantize":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return e.Snapshot(), fmt.Errorf("%s: want on|off: %w", action, ErrBadArguments)
		}
		return e.SetQuantizationEnabled(args[0] == "on"), nil
	default:
		return e.Snapshot(), fmt.Errorf("%w %q", ErrUnknownAction, action)
	}
	return e.Snapshot(), nil
}

func (s *Session) setNumber(action string, v float64) model.Snapshot {
	e := s.Engine
	switch action {
	case "min-value":
		return e.SetMinValue(v)
	case "max-value":
		return e.SetMaxValue(v)
	case "min-distance":
		return e.SetMinDistance(v)
	case "max-distance":
		return e.SetMaxDistance(v)
	default:
		return e.SetStep(v)
	}
}

// drag grabs the handle at its centre, moves to the touch point for value and
// releases. Which handle moves is still decided by the hit test.
func (s *Session) drag(h model.Handle, value float64) {
	e := s.Engine
	if !e.BeginTracking(e.HandleCenter(h)) {
		s.log.Warn("drag missed", zap.Stringer("handle", h))
		return
	}
	if got := e.Tracking(); got != h {
		s.log.Debug("drag grabbed the other handle", zap.Stringer("want", h), zap.Stringer("got", got))
	}
	e.ContinueTracking(e.TouchPoint(value))
	e.EndTracking()
}

// Report formats the current state and tick strip.
func (s *Session) Report() string {
	return notifier.FormatReport(s.Engine.Snapshot(), s.Engine.Ticks())
}

// Close releases the recorder.
func (s *Session) Close() error {
	return s.Recorder.Close()
}

func (s *Session) valueChanged() {
	snap := s.Engine.Snapshot()
	if err := s.Recorder.RecordValueChange(&recorder.ValueChange{
		Selection: snap.Selection,
		Index:     snap.Index,
		Price:     snap.Price,
		Tracking:  snap.Tracking,
	}); err != nil {
		s.log.Error("record value change", zap.Error(err))
	}
}

func (s *Session) stepChanged(h model.Handle, value float64) {
	if err := s.Recorder.RecordStepChange(&recorder.StepChange{Handle: h, Value: value}); err != nil {
		s.log.Error("record step change", zap.Error(err))
	}
}

func (s *Session) gesture(h model.Handle, phase string) {
	if err := s.Recorder.RecordGesture(&recorder.GestureEvent{Handle: h, Phase: phase}); err != nil {
		s.log.Error("record gesture", zap.Error(err))
	}
}

func parseHandle(s string) (model.Handle, error) {
	switch s {
	case "left":
		return model.HandleLeft, nil
	case "right":
		return model.HandleRight, nil
	default:
		return model.HandleNone, fmt.Errorf("handle %q: %w", s, ErrBadArguments)
	}
}

func parsePoint(action string, args []string) (model.Point, error) {
	v, err := parseFloats(action, args, 2)
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: v[0], Y: v[1]}, nil
}

func parseFloats(action string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d numbers, got %d: %w", action, n, len(args), ErrBadArguments)
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		out[i] = v
	}
	return out, nil
}
