package color

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

var (
	rgbFields = []string{"red", "green", "blue"}
	hslFields = []string{"hue", "saturation", "lightness"}
)

// Recognize interprets an untyped value as a Color.
//
// Accepted inputs:
//   - RGBA and HSLA values, or non-nil pointers to them
//   - maps keyed by string, such as the map[string]any produced by
//     encoding/json
//   - structs (or pointers to structs) with numeric fields; a field is named
//     by its json tag when it has one, otherwise by its Go name
//
// Field names are matched case-insensitively. Recognition proceeds in order:
//  1. a "kind" or "type" field of "rgba"/"rgb" or "hsla"/"hsl" selects that
//     encoding, though its full field set is still required; a "Color."
//     prefix is accepted, so "Color.RGBA" works too
//  2. numeric red, green and blue make an RGBA; float channels are rounded
//  3. numeric hue, saturation and lightness make an HSLA; hue is normalized
//
// In both encodings an alpha that is missing or not a number defaults to 1.
// Anything else fails with a *ShapeError wrapping ErrInvalidShape.
func Recognize(v any) (Color, error) {
	switch c := v.(type) {
	case nil:
		return nil, &ShapeError{Reason: "nil value"}
	case RGBA:
		return c, nil
	case HSLA:
		return c, nil
	case *RGBA:
		if c == nil {
			return nil, &ShapeError{Value: v, Reason: "nil pointer"}
		}
		return *c, nil
	case *HSLA:
		if c == nil {
			return nil, &ShapeError{Value: v, Reason: "nil pointer"}
		}
		return *c, nil
	}

	fields, ok := recordFields(reflect.ValueOf(v))
	if !ok {
		return nil, &ShapeError{Value: v, Reason: "not a record"}
	}

	switch kindTag(fields) {
	case KindRGBA:
		return recognizeRGBA(v, fields, true)
	case KindHSLA:
		return recognizeHSLA(v, fields, true)
	}

	if hasAll(fields, rgbFields) {
		return recognizeRGBA(v, fields, false)
	}
	if hasAll(fields, hslFields) {
		return recognizeHSLA(v, fields, false)
	}

	return nil, &ShapeError{
		Value:  v,
		Field:  closestMissing(fields),
		Reason: "expected numeric red/green/blue or hue/saturation/lightness",
	}
}

// ToRGBValue recognizes v and converts it to RGBA.
func ToRGBValue(v any) (RGBA, error) {
	c, err := Recognize(v)
	if err != nil {
		return RGBA{}, err
	}
	return ToRGB(c), nil
}

// ToHSLValue recognizes v and converts it to HSLA.
func ToHSLValue(v any) (HSLA, error) {
	c, err := Recognize(v)
	if err != nil {
		return HSLA{}, err
	}
	return ToHSL(c), nil
}

// ComplementValue recognizes v and returns its complement.
func ComplementValue(v any) (HSLA, error) {
	c, err := Recognize(v)
	if err != nil {
		return HSLA{}, err
	}
	return Complement(c), nil
}

func recognizeRGBA(v any, fields map[string]reflect.Value, tagged bool) (Color, error) {
	var ch [3]float64
	for i, name := range rgbFields {
		n, ok := number(fields[name])
		if !ok {
			return nil, missingField(v, name, tagged, KindRGBA)
		}
		ch[i] = n
	}
	return NewRGBA(
		int(math.Round(ch[0])),
		int(math.Round(ch[1])),
		int(math.Round(ch[2])),
		alphaField(fields),
	), nil
}

func recognizeHSLA(v any, fields map[string]reflect.Value, tagged bool) (Color, error) {
	var ch [3]float64
	for i, name := range hslFields {
		n, ok := number(fields[name])
		if !ok {
			return nil, missingField(v, name, tagged, KindHSLA)
		}
		ch[i] = n
	}
	return NewHSLA(ch[0], ch[1], ch[2], alphaField(fields)), nil
}

func missingField(v any, name string, tagged bool, k Kind) error {
	reason := "missing or non-numeric field"
	if tagged {
		reason = "tagged " + k.String() + " but " + reason
	}
	return &ShapeError{Value: v, Field: name, Reason: reason}
}

// alphaField returns the numeric alpha, or 1 when it is absent or not a
// number.
func alphaField(fields map[string]reflect.Value) float64 {
	if a, ok := number(fields["alpha"]); ok {
		return a
	}
	return 1
}

// tagFields are checked in order for an explicit encoding.
var tagFields = []string{"kind", "type"}

// kindTag reads an explicit "kind" or "type" field. Unknown tags are ignored.
func kindTag(fields map[string]reflect.Value) Kind {
	for _, name := range tagFields {
		fv := indirect(fields[name])
		if !fv.IsValid() || fv.Kind() != reflect.String {
			continue
		}
		switch strings.TrimPrefix(strings.ToLower(fv.String()), "color.") {
		case "rgba", "rgb":
			return KindRGBA
		case "hsla", "hsl":
			return KindHSLA
		}
	}
	return 0
}

func hasAll(fields map[string]reflect.Value, names []string) bool {
	for _, name := range names {
		if _, ok := number(fields[name]); !ok {
			return false
		}
	}
	return true
}

// closestMissing picks the first absent field of whichever encoding the
// record resembles more.
func closestMissing(fields map[string]reflect.Value) string {
	firstMissing := func(names []string) (string, int) {
		var missing string
		present := 0
		for _, name := range names {
			if _, ok := number(fields[name]); ok {
				present++
			} else if missing == "" {
				missing = name
			}
		}
		return missing, present
	}

	rgbMissing, rgbPresent := firstMissing(rgbFields)
	hslMissing, hslPresent := firstMissing(hslFields)
	if hslPresent > rgbPresent {
		return hslMissing
	}
	return rgbMissing
}

// recordFields flattens a string-keyed map or a struct into lower-cased field
// names.
func recordFields(rv reflect.Value) (map[string]reflect.Value, bool) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil, false
	}

	fields := make(map[string]reflect.Value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		iter := rv.MapRange()
		for iter.Next() {
			fields[strings.ToLower(iter.Key().String())] = iter.Value()
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == "-" {
				continue
			} else if tag != "" {
				name = tag
			}
			fields[strings.ToLower(name)] = rv.Field(i)
		}
	default:
		return nil, false
	}
	return fields, true
}

// number extracts a float from any numeric kind or a json.Number.
func number(fv reflect.Value) (float64, bool) {
	fv = indirect(fv)
	if !fv.IsValid() {
		return 0, false
	}

	if !fv.CanInterface() {
		return 0, false
	}
	if n, ok := fv.Interface().(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(fv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(fv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return fv.Float(), true
	}
	return 0, false
}

// indirect unwraps interfaces and pointers. It returns the zero Value for nil.
func indirect(fv reflect.Value) reflect.Value {
	for fv.IsValid() && (fv.Kind() == reflect.Interface || fv.Kind() == reflect.Pointer) {
		if fv.IsNil() {
			return reflect.Value{}
		}
		fv = fv.Elem()
	}
	return fv
}
