package render

import "github.com/fakhrymubarak/weather-widget/internal/model"

// RenderAll runs the three renderers in order against the same payload.
func RenderAll(sink Sink, resp *model.ForecastResponse) {
	RenderCurrent(sink, resp)
	RenderHourly(sink, resp)
	RenderWeekly(sink, resp)
}
