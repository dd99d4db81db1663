package audit

import (
	"reflect"
	"testing"
)

func TestActionsCatalog(t *testing.T) {
	actions := Actions()
	var names []string
	for _, a := range actions {
		names = append(names, a.Name)
	}
	want := []string{
		ActionSlither, ActionAderyn, ActionMythril,
		ActionPatterns, ActionReadContract, ActionCheckTools,
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("catalog = %v, want %v", names, want)
	}

	for _, a := range actions {
		if a.Description == "" {
			t.Fatalf("%s has no description", a.Name)
		}
		required, _ := a.InputSchema["required"].([]string)
		if a.Name == ActionCheckTools {
			if len(required) != 0 {
				t.Fatalf("check_tools should require nothing, got %v", required)
			}
			continue
		}
		if !reflect.DeepEqual(required, []string{"contract_path"}) {
			t.Fatalf("%s should require contract_path, got %v", a.Name, required)
		}
	}
}
