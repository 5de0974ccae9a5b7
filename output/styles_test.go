package output

import (
	"bytes"
	"strings"
	"testing"

	"fincoach"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesContainText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name   string
		result string
		text   string
	}{
		{"Success", styles.Success("done"), "done"},
		{"Error", styles.Error("broken"), "broken"},
		{"Warning", styles.Warning("careful"), "careful"},
		{"FilePath", styles.FilePath("transactions.csv"), "transactions.csv"},
		{"Amount", styles.Amount("$54.89"), "$54.89"},
		{"Category", styles.Category("Groceries"), "Groceries"},
		{"Dim", styles.Dim("secondary"), "secondary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.result, tt.text) {
				t.Errorf("%s() result should contain %q, got: %s", tt.name, tt.text, tt.result)
			}
		})
	}
}

func TestStylesSeverity(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for _, severity := range []fincoach.Severity{fincoach.Info, fincoach.Warn, fincoach.Alert} {
		result := styles.Severity(severity)
		if !strings.Contains(result, string(severity)) {
			t.Errorf("Severity(%q) result should contain the label, got: %s", severity, result)
		}
	}
}
