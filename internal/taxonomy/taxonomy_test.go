package taxonomy

import (
	"reflect"
	"testing"
)

func TestSubcategoriesForPhysical(t *testing.T) {
	got := SubcategoriesFor("Physical")
	want := []string{"Trauma", "Physical Labor", "Illness", "Dietary Stress"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSubcategoriesForUnknown(t *testing.T) {
	for _, category := range []string{"Unknown", "", "physical"} {
		if got := SubcategoriesFor(category); len(got) != 0 {
			t.Fatalf("expected no sub-categories for %q, got %v", category, got)
		}
	}
}

func TestSubcategoriesForReturnsCopy(t *testing.T) {
	got := SubcategoriesFor(Psychospiritual)
	got[0] = "changed"
	if again := SubcategoriesFor(Psychospiritual); again[0] != "Values of Life" {
		t.Fatalf("expected table to be unaffected, got %q", again[0])
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []string{"Physical", "Psychological", "Psychosocial", "Psychospiritual"}
	if got := Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, c := range want {
		if len(SubcategoriesFor(c)) == 0 {
			t.Fatalf("expected sub-categories for %s", c)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains(Psychosocial, "Financial Stress") {
		t.Fatal("expected Financial Stress under Psychosocial")
	}
	if Contains(Physical, "Financial Stress") {
		t.Fatal("expected Financial Stress not under Physical")
	}
	if Contains("", "") {
		t.Fatal("expected empty category to contain nothing")
	}
}
