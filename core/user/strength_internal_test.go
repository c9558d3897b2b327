package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_checkPasswordStrength(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		attrs   []string
		wantErr bool
	}{
		{name: "strong enough", pwd: "claveSegura42"},
		{name: "too short", pwd: "abc1", wantErr: true},
		{name: "all numeric", pwd: "9876543210", wantErr: true},
		{name: "similar to attribute", pwd: "maria.quispe", attrs: []string{"Maria Quispe"}, wantErr: true},
		{name: "dissimilar attribute ok", pwd: "claveSegura42", attrs: []string{"Maria Quispe"}},
		{name: "blank attributes skipped", pwd: "claveSegura42", attrs: []string{"  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPasswordStrength(tt.pwd, tt.attrs...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
