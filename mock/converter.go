package mock

import "github.com/fwojciec/showcase"

var _ showcase.Converter = (*Converter)(nil)

// Converter is a mock implementation of showcase.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
