package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStatus int
		wantOut    string
		wantErr    []string
	}{
		{name: "total", args: []string{"5"}, wantOut: "7\n"},
		{name: "total of ten", args: []string{"10"}, wantOut: "42\n"},
		{name: "total of zero", args: []string{"0"}, wantOut: "0\n"},
		{name: "exact parts", args: []string{"6", "3"}, wantOut: "3\n"},
		{name: "more parts than n", args: []string{"3", "7"}, wantOut: "0\n"},
		{name: "memoized", args: []string{"100", "50"}, wantOut: "204226\n"},
		{name: "total of two hundred", args: []string{"200"}, wantOut: "3972999029388\n"},
		{
			name:       "missing n",
			args:       nil,
			wantStatus: exitFailure,
			wantErr:    []string{"missing argument", "usage:"},
		},
		{
			name:       "malformed n",
			args:       []string{"five"},
			wantStatus: exitFailure,
			wantErr:    []string{"malformed argument", `n="five"`},
		},
		{
			name:       "negative n",
			args:       []string{"-5"},
			wantStatus: exitFailure,
			wantErr:    []string{"out of domain", "n must be non-negative"},
		},
		{
			name:       "n too large",
			args:       []string{"406"},
			wantStatus: exitFailure,
			wantErr:    []string{"out of range"},
		},
		{
			name:       "zero k",
			args:       []string{"5", "0"},
			wantStatus: exitFailure,
			wantErr:    []string{"k must be positive"},
		},
		{
			name:       "both arguments bad",
			args:       []string{"-1", "x"},
			wantStatus: exitFailure,
			wantErr:    []string{"n must be non-negative", `k="x"`},
		},
		{
			name:       "too many arguments",
			args:       []string{"1", "2", "3"},
			wantStatus: exitFailure,
			wantErr:    []string{"accepts at most 2 arg(s)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantOut, stdout.String())
			for _, want := range tt.wantErr {
				assert.Contains(t, stderr.String(), want)
			}
			if tt.wantStatus == 0 {
				assert.Empty(t, stderr.String())
			}
		})
	}
}
