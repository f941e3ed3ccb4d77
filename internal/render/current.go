package render

import "github.com/fakhrymubarak/weather-widget/internal/model"

// Placeholder is shown for a field whose source block is absent from the payload.
const Placeholder = "--"

// RenderCurrent writes the current-conditions panel. Fields whose data is
// missing degrade individually; the rest of the panel still renders.
func RenderCurrent(sink Sink, resp *model.ForecastResponse) {
	if resp.Location != nil {
		sink.SetText(IDCityName, resp.Location.Name)
	} else {
		sink.SetText(IDCityName, Placeholder)
	}

	rain := Placeholder
	if day, ok := resp.FirstDay(); ok {
		rain = Number(day.Day.DailyChanceOfRain) + "%"
	}
	labelled(sink, IDChanceOfRain, "Chance of Rain: ", rain)

	cur := resp.Current
	if cur == nil {
		labelled(sink, IDConditionText, "Condition: ", Placeholder)
		for _, id := range []string{IDTemperature, IDRealFeel, IDHumidity, IDWindSpeed, IDUVIndex} {
			sink.SetText(id, Placeholder)
		}
		hideIcon(sink)
		return
	}

	labelled(sink, IDConditionText, "Condition: ", cur.Condition.Text)
	sink.SetText(IDTemperature, Fahrenheit(cur.TempF))

	if cur.Condition.Icon != "" {
		sink.SetAttr(IDCurrentIcon, "src", IconURL(cur.Condition.Icon))
		sink.SetAttr(IDCurrentIcon, "alt", cur.Condition.Text)
		sink.SetAttr(IDCurrentIcon, "style", "display: block")
	} else {
		hideIcon(sink)
	}

	sink.SetText(IDRealFeel, Fahrenheit(cur.FeelsLikeF))
	sink.SetText(IDHumidity, Number(cur.Humidity)+"%")
	sink.SetText(IDWindSpeed, Number(cur.WindMph)+" mph")
	sink.SetText(IDUVIndex, Number(cur.UV))
}

// labelled replaces the content of id with "label<span>value</span>".
func labelled(sink Sink, id, label, value string) {
	sink.Clear(id)
	sink.Append(id, Text(label))
	sink.Append(id, El("span", nil, Text(value)))
}

func hideIcon(sink Sink) {
	sink.SetAttr(IDCurrentIcon, "style", "display: none")
}
