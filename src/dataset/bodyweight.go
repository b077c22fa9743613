package dataset

// Cohort keys as they appear in the measurement table.
const (
	NormalControl   = "Normal Control"
	DiabeticControl = "Diabetic Control"
	DiaErt5         = "DIA+ERT(5)"
	DiaErt10        = "DIA+ERT(10)"
	DiaUmb40        = "DIA+UMB(40)"
	DiaErt5Met200   = "DIA+ERT(5)+MET(200)"
	DiaErt5Met200U  = "DIA+ERT(5)+MET(200)+UMB(20)"
)

const (
	defaultStrokeWidth = 3
	defaultDotRadius   = 4
)

type row struct {
	label  string
	values [7]float64
}

// Column order of row.values matches bodyWeightCohorts.
var bodyWeightRows = []row{
	{"-4th Week", [7]float64{108, 171, 99.5, 104.6, 99, 100.3, 102.5}},
	{"0 Day", [7]float64{147.1, 195.1, 124.0, 129, 125.6, 123.5, 124}},
	{"3rd Week", [7]float64{162.3, 201.1, 136.8, 141.8, 140.8, 140.1, 143}},
	{"6th Week", [7]float64{191.8, 211.5, 167, 180.3, 177.8, 180.6, 174.3}},
}

var bodyWeightCohorts = [7]CohortSeries{
	{Key: NormalControl, Label: "NORMAL", Color: "#ff9500"},
	{Key: DiabeticControl, Label: "DIABETIC", Color: "#e60026"},
	{Key: DiaErt5, Color: "#b8218a"},
	{Key: DiaErt10, Color: "#d47bb3"},
	{Key: DiaUmb40, Color: "#1e90ff"},
	{Key: DiaErt5Met200, Color: "#00bfff"},
	{Key: DiaErt5Met200U, Color: "#333333"},
}

// BodyWeight returns the bundled body weight table: four time points, seven cohorts.
// Each call returns an independent Dataset.
func BodyWeight() Dataset {
	cohorts := make([]CohortSeries, len(bodyWeightCohorts))
	for i, c := range bodyWeightCohorts {
		c.StrokeWidth = defaultStrokeWidth
		c.DotRadius = defaultDotRadius
		cohorts[i] = c
	}
	points := make([]TimePoint, len(bodyWeightRows))
	for i, r := range bodyWeightRows {
		vals := make(map[string]float64, len(cohorts))
		for j, c := range cohorts {
			vals[c.Key] = r.values[j]
		}
		points[i] = TimePoint{Label: r.label, values: vals}
	}
	return Dataset{points: points, cohorts: cohorts}
}
