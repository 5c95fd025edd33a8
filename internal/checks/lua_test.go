package checks

import (
	"testing"
)

func TestLuaValidator(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		rcode   int
		answers int
		wantErr bool
	}{
		{
			name:    "accepts-noerror-with-answers",
			script:  "return rcode == 0 and answers > 0",
			rcode:   0,
			answers: 2,
			wantErr: false,
		},
		{
			name:    "rejects-servfail",
			script:  "return rcode == 0",
			rcode:   2,
			answers: 0,
			wantErr: true,
		},
		{
			name:    "rejects-empty-answer",
			script:  "return answers > 0",
			rcode:   0,
			answers: 0,
			wantErr: true,
		},
		{
			name:    "nil-return-fails",
			script:  "return nil",
			rcode:   0,
			answers: 1,
			wantErr: true,
		},
		{
			name:    "broken-script-fails",
			script:  "this is not lua",
			rcode:   0,
			answers: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLuaValidator(tt.script).Validate(tt.rcode, tt.answers)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
