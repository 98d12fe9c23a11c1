package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/twoopt/instance"
	"github.com/katalvlaran/twoopt/tsp"
)

// Report is the per-instance outcome of `twoopt solve`.
// ghodss/yaml encodes through the json tags, so both formats share them.
type Report struct {
	File          string `json:"file"`
	Name          string `json:"name"`
	Dimension     int    `json:"dimension"`
	WeightType    string `json:"weightType"`
	Init          string `json:"init"`
	InitialLength int    `json:"initialLength"`
	Length        int    `json:"length"`
	Gain          int    `json:"gain"`
	Moves         int    `json:"moves"`
	OuterPasses   int    `json:"outerPasses"`
	InnerPasses   int    `json:"innerPasses"`
	Skipped       int    `json:"skipped"`
	Verified      bool   `json:"verified"`
	LoadTime      string `json:"loadTime,omitempty"`
	SolveTime     string `json:"solveTime,omitempty"`
	Tour          []int  `json:"tour,omitempty"`
}

func newReport(path string, in *instance.Instance, strategy tsp.Init, res tsp.Result) Report {
	return Report{
		File:          path,
		Name:          in.Name(),
		Dimension:     in.Size(),
		WeightType:    in.Kind().String(),
		Init:          strategy.String(),
		InitialLength: res.InitialLength,
		Length:        res.Length,
		Gain:          res.Stats.Gain,
		Moves:         res.Stats.Moves,
		OuterPasses:   res.Stats.OuterPasses,
		InnerPasses:   res.Stats.InnerPasses,
		Skipped:       res.Stats.Skipped,
		Verified:      res.Verified,
	}
}

// Info is the header summary printed by `twoopt info`.
type Info struct {
	File       string `json:"file"`
	Name       string `json:"name"`
	Comment    string `json:"comment,omitempty"`
	Dimension  int    `json:"dimension"`
	WeightType string `json:"weightType"`
	Depots     []int  `json:"depots,omitempty"`
}

func newInfo(path string, in *instance.Instance) Info {
	return Info{
		File:       path,
		Name:       in.Name(),
		Comment:    in.Comment(),
		Dimension:  in.Size(),
		WeightType: in.Kind().String(),
		Depots:     in.Depots(),
	}
}

// writeReports renders reports in the requested format.
func writeReports(w io.Writer, format string, reports []Report) error {
	if format != formatText {
		return encode(w, format, reports)
	}
	for _, r := range reports {
		fmt.Fprintf(w, "%s (%s): dimension=%d weight=%s\n", r.Name, r.File, r.Dimension, r.WeightType)
		fmt.Fprintf(w, "  initial length: %d (%s)\n", r.InitialLength, r.Init)
		fmt.Fprintf(w, "  final length:   %d (gain %d, %d moves, %d/%d outer/inner passes)\n",
			r.Length, r.Gain, r.Moves, r.OuterPasses, r.InnerPasses)
		if r.Verified {
			fmt.Fprintln(w, "  verified:       2-opt local optimum")
		}
		if r.Tour != nil {
			fmt.Fprintf(w, "  tour:           %s\n", tsp.DebugString(r.Tour))
		}
	}

	return nil
}

// writeInfos renders instance summaries in the requested format.
func writeInfos(w io.Writer, format string, infos []Info) error {
	if format != formatText {
		return encode(w, format, infos)
	}
	for _, in := range infos {
		fmt.Fprintf(w, "%s (%s): dimension=%d weight=%s", in.Name, in.File, in.Dimension, in.WeightType)
		if len(in.Depots) > 0 {
			fmt.Fprintf(w, " depots=%v", in.Depots)
		}
		fmt.Fprintln(w)
		if in.Comment != "" {
			fmt.Fprintf(w, "  %s\n", in.Comment)
		}
	}

	return nil
}

func encode(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case formatYAML:
		data, err = yaml.Marshal(v)
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return errBadFormat
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}
