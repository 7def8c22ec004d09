package heartbeat

import "strings"

// Category is the metric a toggle name selects.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCPU
	CategoryMemory
	CategorySwap
	CategoryHeap
	CategoryStack
	CategoryVirtual
	CategoryThread
	CategoryClass
)

var categoryKeywords = [...]string{
	CategoryUnknown: "UNKNOWN",
	CategoryCPU:     "CPU",
	CategoryMemory:  "MEMORY",
	CategorySwap:    "SWAP",
	CategoryHeap:    "HEAP",
	CategoryStack:   "STACK",
	CategoryVirtual: "VIRTUAL",
	CategoryThread:  "THREAD",
	CategoryClass:   "CLASS",
}

// matchOrder is the tie-break order for names containing several keywords.
var matchOrder = []Category{
	CategoryCPU,
	CategoryMemory,
	CategorySwap,
	CategoryHeap,
	CategoryStack,
	CategoryVirtual,
	CategoryThread,
	CategoryClass,
}

// Categories returns the known categories in match order.
func Categories() []Category {
	return append([]Category(nil), matchOrder...)
}

// Classify returns the first category whose keyword occurs in name,
// ignoring case.
func Classify(name string) Category {
	upper := strings.ToUpper(name)
	for _, c := range matchOrder {
		if strings.Contains(upper, categoryKeywords[c]) {
			return c
		}
	}
	return CategoryUnknown
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryKeywords) {
		return categoryKeywords[CategoryUnknown]
	}
	return categoryKeywords[c]
}

// Scaled reports whether values of c are bytes divided by the Unit.
func (c Category) Scaled() bool {
	switch c {
	case CategoryMemory, CategorySwap, CategoryHeap, CategoryStack, CategoryVirtual:
		return true
	}
	return false
}
