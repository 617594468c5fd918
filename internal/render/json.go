package render

import (
	"encoding/json"

	"github.com/jorge-barreto/notes/internal/catalog"
)

// JSON renders an entry as an indented JSON object.
type JSON struct{}

type jsonEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Body  string `json:"body"`
	Code  string `json:"code,omitempty"`
	Lang  string `json:"lang,omitempty"`
}

func toJSONEntry(e catalog.Entry) jsonEntry {
	code, _ := e.Code()
	return jsonEntry{
		ID:    e.ID().String(),
		Title: e.Title(),
		Slug:  e.Slug(),
		Body:  e.Body(),
		Code:  code,
		Lang:  e.Lang(),
	}
}

func (JSON) Render(e catalog.Entry) string {
	return marshal(toJSONEntry(e))
}

func jsonArray(cat *catalog.Catalog) string {
	return jsonList(cat.All())
}

func jsonList(entries []catalog.Entry) string {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJSONEntry(e))
	}
	return marshal(out)
}

func marshal(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic("render: " + err.Error())
	}
	return string(data) + "\n"
}
