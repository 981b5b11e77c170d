package columnize

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads layout options from a YAML document. Fields missing
// from the document keep their [DefaultOptions] values; unknown fields are
// rejected.
//
//	spacing: 3
//	width: 120
func LoadOptions(r io.Reader) (Options, error) {
	return DecodeOptions(r, DefaultOptions())
}

// DecodeOptions reads layout options from a YAML document on top of base.
// Fields missing from the document keep their base values.
func DecodeOptions(r io.Reader, base Options) (Options, error) {
	opts := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: decode options: %s", ErrInvalidArgument, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// WritePlan writes p to w as YAML.
func WritePlan(w io.Writer, p Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
