package render

import "github.com/fakhrymubarak/weather-widget/internal/model"

// SnapshotHours are the hours of day shown in the intraday snapshot, left to right.
var SnapshotHours = []int{6, 9, 12, 15, 18}

// RenderHourly replaces the hourly snapshot with one slot per entry of
// SnapshotHours that the first forecast day actually has. Absent or null
// hours are skipped without a placeholder.
func RenderHourly(sink Sink, resp *model.ForecastResponse) {
	sink.Clear(IDTodayHourly)

	day, ok := resp.FirstDay()
	if !ok {
		return
	}
	for _, h := range SnapshotHours {
		if h >= len(day.Hour) || day.Hour[h] == nil {
			continue
		}
		sink.Append(IDTodayHourly, hourSlot(h, day.Hour[h]))
	}
}

func hourSlot(h int, hour *model.Hour) Node {
	return El("div", []Attr{{"class", "hour"}},
		El("p", nil, Text(HourLabel(h))),
		El("img", []Attr{
			{"src", IconURL(hour.Condition.Icon)},
			{"alt", hour.Condition.Text},
			{"style", "width: 30px"},
		}),
		El("p", nil, Text(Fahrenheit(hour.TempF))),
	)
}
