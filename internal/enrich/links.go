package enrich

import "github.com/CommanderStorm/navigatum-data/internal/model"

// LocalizeLinks converts every plain-string link text and URL into an
// explicit {de, en} pair carrying the same text in both languages, so
// downstream consumers only ever see localized link structures.
func LocalizeLinks(data map[string]*model.Entry) {
	for _, entry := range data {
		for i := range entry.Props.Links {
			link := &entry.Props.Links[i]
			link.Text = link.Text.Localized()
			link.URL = link.URL.Localized()
		}
	}
}
