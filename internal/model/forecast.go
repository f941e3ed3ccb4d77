package model

// ForecastResponse is the WeatherAPI.com forecast.json payload. Top-level blocks
// are pointers so a payload missing one of them still decodes.
type ForecastResponse struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
	Forecast *Forecast `json:"forecast"`
}

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	Localtime string  `json:"localtime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	IsDay       int       `json:"is_day"`
	Condition   Condition `json:"condition"`
	WindMph     float64   `json:"wind_mph"`
	WindKph     float64   `json:"wind_kph"`
	WindDir     string    `json:"wind_dir"`
	Humidity    float64   `json:"humidity"`
	Cloud       float64   `json:"cloud"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	FeelsLikeF  float64   `json:"feelslike_f"`
	UV          float64   `json:"uv"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"date_epoch"`
	Day       Day    `json:"day"`
	Hour      []*Hour `json:"hour"`
}

type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MaxTempF          float64   `json:"maxtemp_f"`
	MinTempC          float64   `json:"mintemp_c"`
	MinTempF          float64   `json:"mintemp_f"`
	AvgTempF          float64   `json:"avgtemp_f"`
	MaxWindMph        float64   `json:"maxwind_mph"`
	TotalPrecipIn     float64   `json:"totalprecip_in"`
	AvgHumidity       float64   `json:"avghumidity"`
	DailyChanceOfRain float64   `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
	UV                float64   `json:"uv"`
}

// Hour is one entry of a day's 24-slot hourly sequence, indexed by hour of day.
type Hour struct {
	TimeEpoch    int64     `json:"time_epoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	TempF        float64   `json:"temp_f"`
	Condition    Condition `json:"condition"`
	WindMph      float64   `json:"wind_mph"`
	Humidity     float64   `json:"humidity"`
	ChanceOfRain float64   `json:"chance_of_rain"`
}

// Days returns the per-day sequence, or nil when the forecast block is absent.
func (r *ForecastResponse) Days() []ForecastDay {
	if r == nil || r.Forecast == nil {
		return nil
	}
	return r.Forecast.ForecastDay
}

// FirstDay returns the first forecast day, if any.
func (r *ForecastResponse) FirstDay() (ForecastDay, bool) {
	days := r.Days()
	if len(days) == 0 {
		return ForecastDay{}, false
	}
	return days[0], true
}
