package vcf

import "strings"

// InfoKind discriminates the three shapes an INFO value can take.
type InfoKind int

const (
	InfoFlag   InfoKind = iota // bare key, no value (e.g. "DB")
	InfoScalar                 // single value (e.g. "DP=10")
	InfoMulti                  // comma-separated values (e.g. "AF=0.5,0.3")
)

// InfoValue is one INFO key with its tagged value.
type InfoValue struct {
	Key    string
	Kind   InfoKind
	Value  string   // set for InfoScalar
	Values []string // set for InfoMulti
}

// String serializes the pair back to its VCF form.
func (v InfoValue) String() string {
	switch v.Kind {
	case InfoFlag:
		return v.Key
	case InfoMulti:
		return v.Key + "=" + strings.Join(v.Values, ",")
	default:
		return v.Key + "=" + v.Value
	}
}

// InfoFields is an ordered list of INFO pairs. Order follows the source
// column; serialization must not reorder keys.
type InfoFields []InfoValue

// ParseInfo splits an INFO column into tagged key/value pairs.
// "." yields an empty list.
func ParseInfo(info string) InfoFields {
	if info == "" || info == "." {
		return nil
	}

	var fields InfoFields
	for _, kv := range strings.Split(info, ";") {
		if kv == "" {
			continue
		}
		key, val, found := strings.Cut(kv, "=")
		switch {
		case !found:
			fields = append(fields, InfoValue{Key: key, Kind: InfoFlag})
		case strings.Contains(val, ","):
			fields = append(fields, InfoValue{Key: key, Kind: InfoMulti, Values: strings.Split(val, ",")})
		default:
			fields = append(fields, InfoValue{Key: key, Kind: InfoScalar, Value: val})
		}
	}
	return fields
}

// String joins the pairs with semicolons, preserving source order.
// An empty list serializes to "".
func (f InfoFields) String() string {
	if len(f) == 0 {
		return ""
	}
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = v.String()
	}
	return strings.Join(parts, ";")
}

// Get returns the value for key, or false if the key is not present.
func (f InfoFields) Get(key string) (InfoValue, bool) {
	for _, v := range f {
		if v.Key == key {
			return v, true
		}
	}
	return InfoValue{}, false
}
