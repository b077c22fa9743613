package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

func renderHTMLTo(w io.Writer, cfg graph.Config) error {
	return graph.RenderHTML(w, dataset.BodyWeight(), cfg)
}

// printDataset dispatches on format: table (default), csv or json.
func printDataset(w io.Writer, ds dataset.Dataset, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSONDataset(w, ds)
	case "csv":
		return writeCSVDataset(w, ds)
	default:
		return writeTableDataset(w, ds)
	}
}

// datasetRows renders one row per time point; missing values are empty cells.
func datasetRows(ds dataset.Dataset) (header []string, rows [][]string) {
	cohorts := ds.Cohorts()
	header = append(header, "Time")
	for _, c := range cohorts {
		header = append(header, c.Key)
	}
	for _, p := range ds.Points() {
		row := []string{p.Label}
		for _, c := range cohorts {
			if v, ok := p.Value(c.Key); ok {
				row = append(row, graph.FormatGrams(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}

func writeTableDataset(w io.Writer, ds dataset.Dataset) error {
	header, rows := datasetRows(ds)
	table := tablewriter.NewWriter(w)
	table.Header(header)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeCSVDataset(w io.Writer, ds dataset.Dataset) error {
	header, rows := datasetRows(ds)
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

type jsonCohort struct {
	Key         string  `json:"key"`
	Label       string  `json:"label,omitempty"`
	Color       string  `json:"color"`
	StrokeWidth float64 `json:"stroke_width"`
	DotRadius   float64 `json:"dot_radius"`
}

type jsonPoint struct {
	Time   string              `json:"time"`
	Values map[string]*float64 `json:"values"`
}

type jsonDataset struct {
	Cohorts []jsonCohort `json:"cohorts"`
	Points  []jsonPoint  `json:"points"`
}

func writeJSONDataset(w io.Writer, ds dataset.Dataset) error {
	var out jsonDataset
	for _, c := range ds.Cohorts() {
		out.Cohorts = append(out.Cohorts, jsonCohort{
			Key: c.Key, Label: c.Label, Color: c.Color, StrokeWidth: c.StrokeWidth, DotRadius: c.DotRadius,
		})
	}
	for _, p := range ds.Points() {
		jp := jsonPoint{Time: p.Label, Values: map[string]*float64{}}
		for _, c := range ds.Cohorts() {
			if v, ok := p.Value(c.Key); ok {
				jp.Values[c.Key] = &v
			} else {
				jp.Values[c.Key] = nil
			}
		}
		out.Points = append(out.Points, jp)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
