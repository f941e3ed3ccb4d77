package render

import (
	"fmt"

	"github.com/fakhrymubarak/weather-widget/internal/model"
)

// RenderWeekly replaces the outlook list with one entry per returned day,
// in the order the provider returned them.
func RenderWeekly(sink Sink, resp *model.ForecastResponse) {
	sink.Clear(IDForecastList)

	for _, day := range resp.Days() {
		sink.Append(IDForecastList, dayEntry(day))
	}
}

func dayEntry(day model.ForecastDay) Node {
	cond := day.Day.Condition
	return El("div", []Attr{{"class", "forecast-day"}},
		El("div", nil, Text(fmt.Sprintf("%s (%s)", ShortWeekday(day.Date), day.Date))),
		El("div", nil, Text(cond.Text)),
		El("div", nil, Text("High: "+Fahrenheit(day.Day.MaxTempF))),
		El("div", nil, Text("Low: "+Fahrenheit(day.Day.MinTempF))),
		El("img", []Attr{
			{"src", IconURL(cond.Icon)},
			{"alt", cond.Text},
			{"width", "32"},
		}),
	)
}
