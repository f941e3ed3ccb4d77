package render

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/fakhrymubarak/weather-widget/internal/model"
	"github.com/stretchr/testify/require"
)

type call struct {
	op, id, name, value string
	node                Node
}

// recorder is a Sink that records every call and keeps the resulting state.
type recorder struct {
	calls    []call
	text     map[string]string
	attrs    map[string]map[string]string
	children map[string][]Node
}

func newRecorder() *recorder {
	return &recorder{
		text:     map[string]string{},
		attrs:    map[string]map[string]string{},
		children: map[string][]Node{},
	}
}

func (r *recorder) SetText(id, text string) {
	r.calls = append(r.calls, call{op: "text", id: id, value: text})
	r.text[id] = text
	delete(r.children, id)
}

func (r *recorder) SetAttr(id, name, value string) {
	r.calls = append(r.calls, call{op: "attr", id: id, name: name, value: value})
	if r.attrs[id] == nil {
		r.attrs[id] = map[string]string{}
	}
	r.attrs[id][name] = value
}

func (r *recorder) Clear(id string) {
	r.calls = append(r.calls, call{op: "clear", id: id})
	delete(r.text, id)
	delete(r.children, id)
}

func (r *recorder) Append(id string, child Node) {
	r.calls = append(r.calls, call{op: "append", id: id, node: child})
	r.children[id] = append(r.children[id], child)
}

// content returns what a reader would see inside id.
func (r *recorder) content(id string) string {
	s := r.text[id]
	for _, c := range r.children[id] {
		s += c.TextContent()
	}
	return s
}

func (r *recorder) count(op, id string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op && c.id == id {
			n++
		}
	}
	return n
}

func loadForecast(t *testing.T) *model.ForecastResponse {
	t.Helper()
	data, err := os.ReadFile("../../testdata/forecast_chicago.json")
	require.NoError(t, err)
	var resp model.ForecastResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return &resp
}
