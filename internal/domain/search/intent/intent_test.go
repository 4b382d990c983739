package intent

import "testing"

func TestIsValid(t *testing.T) {
	valid := []Intent{Title, Author, Topic, ISBN, General}
	for _, i := range valid {
		if !i.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", i)
		}
	}

	invalid := []Intent{"", "keyword", "TITLE", "barcode"}
	for _, i := range invalid {
		if i.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", i)
		}
	}
}
