// Package render copies fields from a forecast payload onto page output.
//
// Renderers never touch a real page. They write through a Sink, which the
// page package implements over an HTML tree and tests implement with a
// recorder.
package render

// Element ids of the page surface.
const (
	IDSearchInput   = "searchCity"
	IDCityName      = "cityName"
	IDConditionText = "conditionText"
	IDChanceOfRain  = "chanceOfRain"
	IDTemperature   = "temperature"
	IDCurrentIcon   = "currentIcon"
	IDRealFeel      = "realFeel"
	IDHumidity      = "humidity"
	IDWindSpeed     = "windSpeed"
	IDUVIndex       = "uvIndex"
	IDTodayHourly   = "todayHourly"
	IDForecastList  = "forecastList"
)

// Sink is the set of page mutations a renderer may perform on elements
// addressed by id. Writes to an unknown id are ignored.
type Sink interface {
	SetText(id, text string)
	SetAttr(id, name, value string)
	Clear(id string)
	Append(id string, child Node)
}

// Attr is a single element attribute.
type Attr struct {
	Key, Val string
}

// Node is a detached element (or text node when Tag is empty) to be
// appended under a container.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []Node
}

// Text returns a text node.
func Text(s string) Node { return Node{Text: s} }

// El returns an element with the given tag and children.
func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Attr returns the value of the named attribute and whether it is set.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates the text of n and all its descendants.
func (n Node) TextContent() string {
	s := n.Text
	for _, c := range n.Children {
		s += c.TextContent()
	}
	return s
}
