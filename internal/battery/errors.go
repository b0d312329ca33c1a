package battery

import "fmt"

// ValueError is the data attached to an invalid_value error.
type ValueError struct {
	Attribute string
	Value     string
	Expected  string
}

func (v ValueError) String() string {
	return fmt.Sprintf("%s=%q, expected %s", v.Attribute, v.Value, v.Expected)
}
