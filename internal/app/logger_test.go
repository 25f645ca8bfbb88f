package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		wantHas     []string
		wantMissing []string
	}{
		{
			name:        "text at info drops debug",
			cfg:         Config{LogFormat: "text", LogLevel: "info"},
			wantHas:     []string{"app=rootpatch", `msg="info line"`},
			wantMissing: []string{"debug line", "source="},
		},
		{
			name:    "json at debug carries source",
			cfg:     Config{LogFormat: "json", LogLevel: "debug"},
			wantHas: []string{`"app":"rootpatch"`, `"msg":"debug line"`, `"source":`},
		},
		{
			name:        "error level",
			cfg:         Config{LogFormat: "text", LogLevel: "error"},
			wantMissing: []string{"info line", "debug line"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&tc.cfg, &buf)

			logger.Debug("debug line")
			logger.Info("info line")

			for _, s := range tc.wantHas {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tc.wantMissing {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
