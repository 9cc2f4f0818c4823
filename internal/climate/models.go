package climate

// Report is the normalized climate-outlook section: the baseline normal, the
// mid-century projection and the deltas between them. Precipitation changes
// are nil when the baseline is too dry for a meaningful ratio.
type Report struct {
	Baseline              WindowStats `json:"baseline"`
	Future                WindowStats `json:"future"`
	SummerWarmingC        float64     `json:"summerWarmingC"`
	WinterPrecipChangePct *int        `json:"winterPrecipChangePct"`
	SummerPrecipChangePct *int        `json:"summerPrecipChangePct"`
}

// WindowStats are seasonal statistics for one thirty-year window. Summer is
// June to August, winter is December to February.
type WindowStats struct {
	SummerDayTempC      float64 `json:"summerDayTempC"`
	SummerNightTempC    float64 `json:"summerNightTempC"`
	WinterDailyPrecipMm float64 `json:"winterDailyPrecipMm"`
	SummerDailyPrecipMm float64 `json:"summerDailyPrecipMm"`
	HotDaysPerYear      float64 `json:"hotDaysPerYear"`
}
