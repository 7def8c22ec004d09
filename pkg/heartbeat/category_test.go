package heartbeat

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"MyCpuLoad", CategoryCPU},
		{"cpu", CategoryCPU},
		{"FooMemoryBar", CategoryMemory},
		{"swapUsed", CategorySwap},
		{"jvmHeap", CategoryHeap},
		{"STACK", CategoryStack},
		{"virtualCommitted", CategoryVirtual},
		{"threads", CategoryThread},
		{"loadedClasses", CategoryClass},
		{"Unknown123", CategoryUnknown},
		{"", CategoryUnknown},

		// first keyword in match order wins
		{"ThreadCpu", CategoryCPU},
		{"HeapMemory", CategoryMemory},
		{"VirtualSwap", CategorySwap},
		{"StackHeap", CategoryHeap},
		{"ClassThread", CategoryThread},
		{"VirtualStack", CategoryStack},
	}

	for _, tt := range tests {
		got := Classify(tt.name)
		if got != tt.want {
			t.Errorf("Classify(%q) = %v; want %v", tt.name, got, tt.want)
		}
		if again := Classify(tt.name); again != got {
			t.Errorf("Classify(%q) not stable: %v then %v", tt.name, got, again)
		}
	}
}

func TestCategoryStringAndScaled(t *testing.T) {
	want := []struct {
		keyword string
		scaled  bool
	}{
		{"CPU", false},
		{"MEMORY", true},
		{"SWAP", true},
		{"HEAP", true},
		{"STACK", true},
		{"VIRTUAL", true},
		{"THREAD", false},
		{"CLASS", false},
	}

	cats := Categories()
	if len(cats) != len(want) {
		t.Fatalf("Categories() has %d entries; want %d", len(cats), len(want))
	}
	for i, c := range cats {
		if c.String() != want[i].keyword {
			t.Errorf("Categories()[%d] = %s; want %s", i, c, want[i].keyword)
		}
		if c.Scaled() != want[i].scaled {
			t.Errorf("%s.Scaled() = %v; want %v", c, c.Scaled(), want[i].scaled)
		}
	}

	if CategoryUnknown.String() != "UNKNOWN" || Category(99).String() != "UNKNOWN" {
		t.Errorf("unknown categories should print UNKNOWN")
	}
}

func TestToggle(t *testing.T) {
	if !(Toggle{Name: "cpu", Value: "YES"}).Enabled() {
		t.Errorf("YES should be enabled")
	}
	for _, v := range []string{"NO", "yes", "", "TRUE"} {
		if (Toggle{Name: "cpu", Value: v}).Enabled() {
			t.Errorf("value %q should not be enabled", v)
		}
	}

	valid := []Toggle{{"cpu", "YES"}, {"heap", "NO"}}
	for _, tg := range valid {
		if err := tg.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v; want nil", tg, err)
		}
	}
	invalid := []Toggle{{"", "YES"}, {"cpu", "yes"}, {"cpu", ""}, {"cpu", "MAYBE"}}
	for _, tg := range invalid {
		if err := tg.Validate(); !errors.Is(err, ErrInvalidToggle) {
			t.Errorf("Validate(%v) = %v; want %v", tg, err, ErrInvalidToggle)
		}
	}
}
