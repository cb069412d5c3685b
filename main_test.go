package main

import (
	"testing"

	"github.com/klokku/planner/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYear(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
		errIs   error
	}{
		{name: "no year", args: nil, want: 0},
		{name: "explicit year", args: []string{"2025"}, want: 2025},
		{name: "year out of range", args: []string{"10000"}, wantErr: true, errIs: planner.ErrInvalidYear},
		{name: "not a number", args: []string{"next"}, wantErr: true},
		{name: "extra arguments", args: []string{"2025", "2026"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateYear(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
