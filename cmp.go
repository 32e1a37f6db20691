package jot

// Equal reports whether two trees are structurally identical: same kinds,
// same children in the same order, object members compared as an ordered
// list. Numbers are compared exactly.
func Equal(left, right Value) bool {
	if left == nil || right == nil {
		return isUnknown(left) && isUnknown(right)
	}
	if left.Kind() != right.Kind() {
		return false
	}
	switch v := left.(type) {
	case *Array:
		other, ok := right.(*Array)
		if !ok || len(v.Values) != len(other.Values) {
			return false
		}
		for i := range v.Values {
			if !Equal(v.Values[i], other.Values[i]) {
				return false
			}
		}
		return true
	case *Object:
		other, ok := right.(*Object)
		if !ok || len(v.Members) != len(other.Members) {
			return false
		}
		for i := range v.Members {
			if v.Members[i].Key != other.Members[i].Key {
				return false
			}
			if !Equal(v.Members[i].Value, other.Members[i].Value) {
				return false
			}
		}
		return true
	case Number:
		other, ok := right.(Number)
		return ok && v == other
	case String:
		other, ok := right.(String)
		return ok && v == other
	default:
		// null, booleans and unknown carry no payload beyond their kind
		return true
	}
}
