package cli

import (
	"testing"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func TestExpandNotificationID(t *testing.T) {
	all := []models.Notification{
		{ID: "aaaa1111-0000-4000-8000-000000000001"},
		{ID: "aaaa2222-0000-4000-8000-000000000002"},
		{ID: "bbbb3333-0000-4000-8000-000000000003"},
	}

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"unique prefix", "bbbb", "bbbb3333-0000-4000-8000-000000000003", false},
		{"longer unique prefix", "aaaa1", "aaaa1111-0000-4000-8000-000000000001", false},
		{"ambiguous prefix", "aaaa", "", true},
		{"no match passes through", "ffff", "ffff", false},
		{"too short passes through", "aa", "aa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandNotificationID(all, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for prefix %q, got %q", tt.prefix, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
