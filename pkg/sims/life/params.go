package life

import (
	"strconv"

	"conway/pkg/core"
)

// Parameters reports the board settings and the state of the history cursor.
func (s *Sim) Parameters() core.ParameterSnapshot {
	h := s.history
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Size", s.cfg.Size),
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("fps", "Generations/s", s.cfg.FrameRate),
			},
		},
		{
			Name: "History",
			Params: []core.Parameter{
				intParam("generation", "Generation", h.Generation()),
				intParam("retained", "Retained", h.Len()),
				intParam("buffer", "Buffer", h.Cap()),
				boolParam("has_previous", "Has previous", h.HasPrevious()),
				boolParam("has_next", "Has next", h.HasNext()),
				intParam("live", "Live cells", h.Current().LiveCount()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
