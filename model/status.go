package model

// A Status is the property dictionary a model exposes for introspection and
// reconfiguration. Keys are model-defined property names; values are the
// physical quantities in the model's units.
//
// Status updates are all-or-nothing: ApplyStatus implementations stage a copy
// of Parameters, write every present key into the copy, validate the copy in
// full, and only then overwrite the live struct and recalibrate. A rejected
// update leaves the model exactly as it was, including keys that were valid
// on their own.
type Status map[string]float64

// Read writes the value for key into dst if the key is present and reports
// whether it was. The helper keeps ApplyStatus implementations to one line
// per property.
func (s Status) Read(key string, dst *float64) bool {
	v, present := s[key]
	if present {
		*dst = v
	}

	return present
}
