package jot

// Find walks the tree depth first, left to right, and returns the value of
// the first member whose key matches. A matched member is returned as is,
// without searching deeper under it. A miss gives Unknown.
func Find(root Value, key string) Value {
	switch v := root.(type) {
	case *Array:
		for _, item := range v.Values {
			if res := Find(item, key); !isUnknown(res) {
				return res
			}
		}
	case *Object:
		for _, m := range v.Members {
			if m.Key == key {
				return m.Value
			}
			if res := Find(m.Value, key); !isUnknown(res) {
				return res
			}
		}
	default:
	}
	return Unknown{}
}

// FindAll collects every value stored under the given key, in document
// order. Values nested under a matched member are not searched.
func FindAll(root Value, key string) []Value {
	var list []Value
	switch v := root.(type) {
	case *Array:
		for _, item := range v.Values {
			list = append(list, FindAll(item, key)...)
		}
	case *Object:
		for _, m := range v.Members {
			if m.Key == key {
				list = append(list, m.Value)
				continue
			}
			list = append(list, FindAll(m.Value, key)...)
		}
	default:
	}
	return list
}

func isUnknown(v Value) bool {
	return v == nil || v.Kind() == KindUnknown
}
