package naming

import "strconv"

// Unique hands out names that are distinct within one scope, such as the
// members of an enum or the fields of a struct.
type Unique struct {
	taken map[string]bool
}

// NewUnique returns an empty scope.
func NewUnique() *Unique {
	return &Unique{taken: make(map[string]bool)}
}

// Claim reserves name and returns it. A name already taken gets the first
// free "<name><n>" with n >= 2.
func (u *Unique) Claim(name string) string {
	candidate := name
	for n := 2; u.taken[candidate]; n++ {
		candidate = name + strconv.Itoa(n)
	}
	u.taken[candidate] = true
	return candidate
}
