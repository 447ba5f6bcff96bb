package parse

import "github.com/treedoc-format/go-treedoc/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParseFormat records the expected input format. JSON is a YAML subset, so
// the parser accepts both either way; the hint exists for tools that want
// to carry the caller's intent through to encoding.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	return po.format
}
