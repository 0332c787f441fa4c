package showcase

import "slices"

// Documentation holds the documentation paths associated with a page.
type Documentation struct {
	// API holds at most one entry: the page's canonical API path.
	API []string `json:"api"`

	// Src holds the full API path list, including "see also" references.
	Src []string `json:"src"`

	VDL []string `json:"vdl"`
	JS  []string `json:"js"`
}

// NewDocumentation assembles the documentation of a page. It returns nil
// when api, vdl and js are all empty.
func NewDocumentation(api, vdl, js []string) *Documentation {
	if len(api)+len(vdl)+len(js) == 0 {
		return nil
	}

	d := &Documentation{
		API: []string{},
		Src: slices.Clone(api),
		VDL: slices.Clone(vdl),
		JS:  slices.Clone(js),
	}
	if len(api) > 0 {
		d.API = []string{api[0]}
	}
	return d
}
