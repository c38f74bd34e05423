package weather

// Extract builds a Record from a weather document. It never fails: anything
// the document does not supply ends up as a NotFound field (or an empty unit
// label).
func Extract(document string) Record {
	var r Record
	doc := newTextView(document)

	if extractError(doc, &r.Error); r.Failed() {
		return r
	}

	r.Units = UnitLabels{
		Temperature: doc.optional("<ut>", '<'),
		Distance:    doc.optional("<ud>", '<'),
		Speed:       doc.optional("<us>", '<'),
		Pressure:    doc.optional("<up>", '<'),
		Rainfall:    doc.optional("<ur>", '<'),
	}

	r.Location = extractLocation(doc)
	r.CurrentConditions = extractCurrentConditions(doc)
	extractForecasts(doc, &r.Forecasts)
	return r
}

// ExtractLocationID pulls the first location identifier out of a location
// search document. An empty result means the search matched nothing.
func ExtractLocationID(document string) string {
	return newTextView(document).optional(`<loc id="`, '"')
}

func extractError(doc textView, e *ErrorInfo) {
	block, ok := doc.after("<error>")
	if !ok {
		return
	}
	typed, ok := block.after(`<err type="`)
	if !ok {
		return
	}
	e.Kind, _ = typed.until('"')
	e.Message, _ = typed.value(">", '<')
}

func extractLocation(doc textView) Location {
	loc, ok := doc.find("<loc id=")
	if !ok {
		return Location{Name: NotFound(), Latitude: NotFound(), Longitude: NotFound()}
	}
	return Location{
		Name:      loc.field("<dnam>", '<'),
		Latitude:  loc.field("<lat>", '<'),
		Longitude: loc.field("<lon>", '<'),
	}
}

func extractCurrentConditions(doc textView) CurrentConditions {
	cc, ok := doc.find("<cc>")
	if !ok {
		return CurrentConditions{
			LastUpdated:   NotFound(),
			Temperature:   NotFound(),
			Dewpoint:      NotFound(),
			Text:          NotFound(),
			Visibility:    NotFound(),
			Humidity:      NotFound(),
			Station:       NotFound(),
			FeelsLike:     NotFound(),
			MoonPhaseText: NotFound(),
			UV:            UV{Index: NotFound(), Text: NotFound()},
			Barometer:     Barometer{Direction: NotFound(), Reading: NotFound()},
			Wind:          missingWind(),
		}
	}

	c := CurrentConditions{
		LastUpdated: cc.field("<lsup>", '<'),
		Temperature: cc.field("<tmp>", '<'),
		Dewpoint:    cc.field("<dewp>", '<'),
		Text:        cc.field("<t>", '<'),
		Visibility:  cc.field("<vis>", '<'),
		Humidity:    cc.field("<hmid>", '<'),
		Station:     cc.field("<obst>", '<'),
		FeelsLike:   cc.field("<flik>", '<'),
	}

	c.MoonPhaseText = NotFound()
	if moon, ok := cc.find("<moon>"); ok {
		c.MoonPhaseText = moon.field("<t>", '<')
	}

	c.UV = UV{Index: NotFound(), Text: NotFound()}
	if uv, ok := cc.find("<uv>"); ok {
		c.UV = UV{Index: uv.field("<i>", '<'), Text: uv.field("<t>", '<')}
	}

	c.Barometer = Barometer{Direction: NotFound(), Reading: NotFound()}
	if bar, ok := cc.find("<bar>"); ok {
		c.Barometer = Barometer{Direction: bar.field("<d>", '<'), Reading: bar.field("<r>", '<')}
	}

	c.Wind = extractWind(cc)
	return c
}

func extractWind(parent textView) Wind {
	w, ok := parent.find("<wind>")
	if !ok {
		return missingWind()
	}
	return Wind{
		Gust:      w.field("<gust>", '<'),
		Direction: w.field("<d>", '<'),
		Speed:     w.field("<s>", '<'),
		Text:      w.field("<t>", '<'),
	}
}

func missingWind() Wind {
	return Wind{Gust: NotFound(), Direction: NotFound(), Speed: NotFound(), Text: NotFound()}
}

func missingDayPart() DayPart {
	return DayPart{
		Text:           NotFound(),
		ChanceOfPrecip: NotFound(),
		Humidity:       NotFound(),
		Wind:           missingWind(),
	}
}

// extractForecasts walks the <dayf> section. The cursor moves to the closing
// </day> of each entry so the next search cannot match the same day again.
func extractForecasts(doc textView, days *[ForecastDays]Forecast) {
	dayf, ok := doc.find("<dayf>")
	if !ok {
		for i := range days {
			days[i] = Forecast{
				DayOfWeek: NotFound(),
				High:      NotFound(),
				Low:       NotFound(),
				Sunset:    NotFound(),
				Sunrise:   NotFound(),
				DayPart:   missingDayPart(),
				Night:     missingDayPart(),
			}
		}
		return
	}

	cursor := dayf
	for i := 0; i < ForecastDays; i++ {
		entry, ok := cursor.find("<day d=")
		if !ok {
			markDayMissing(&days[i])
			continue
		}
		days[i] = extractDay(entry)

		end, ok := entry.find("</day>")
		if !ok {
			// Unterminated entry: nothing after it can be attributed to a day.
			for j := i + 1; j < ForecastDays; j++ {
				markDayMissing(&days[j])
			}
			return
		}
		cursor = end
	}
}

// markDayMissing fills only the direct scalars of a day. The day and night
// parts are left unset.
func markDayMissing(f *Forecast) {
	f.DayOfWeek = NotFound()
	f.High = NotFound()
	f.Low = NotFound()
	f.Sunset = NotFound()
	f.Sunrise = NotFound()
}

func extractDay(entry textView) Forecast {
	f := Forecast{
		DayOfWeek: entry.field(`t="`, '"'),
		High:      entry.field("<hi>", '<'),
		Sunset:    entry.field("<suns>", '<'),
		Low:       entry.field("<low>", '<'),
		Sunrise:   entry.field("<sunr>", '<'),
		DayPart:   missingDayPart(),
		Night:     missingDayPart(),
	}
	if part, ok := entry.find(`<part p="d">`); ok {
		f.DayPart = extractDayPart(part)
	}
	if part, ok := entry.find(`<part p="n">`); ok {
		f.Night = extractDayPart(part)
	}
	return f
}

func extractDayPart(part textView) DayPart {
	return DayPart{
		Text:           part.field("<t>", '<'),
		ChanceOfPrecip: part.field("<ppcp>", '<'),
		Humidity:       part.field("<hmid>", '<'),
		Wind:           extractWind(part),
	}
}
