// Package cache provides the bounded LRU cache behind text measurement.
//
// Measuring a string walks every glyph of the font, and an element measures
// its text on every keystroke and on every font change. Results are pure
// functions of (text, font, size), so they are cached:
//
//	c := cache.New[key, float64](512)
//	w := c.GetOrCreate(k, func() float64 { return measure(k) })
//
// Cache is safe for concurrent use so that one measurer can serve many
// elements. It must not be copied after creation (it contains a mutex).
package cache
