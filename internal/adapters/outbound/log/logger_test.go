package log

import (
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	tests := map[string]struct {
		init          InitLogger
		expectedFlags int
		expectErr     bool
	}{
		"stdout-utc": {
			init:          InitLogger{Prefix: "smartread ", Output: "stdout", UTC: "true"},
			expectedFlags: log.LstdFlags | log.Lmsgprefix | log.LUTC,
		},
		"stderr-local-time": {
			init:          InitLogger{Prefix: "smartread ", Output: "stderr", UTC: "false"},
			expectedFlags: log.LstdFlags | log.Lmsgprefix,
		},
		"unsupported-output": {
			init:      InitLogger{Prefix: "smartread ", Output: "syslog"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.ErrorContains(t, err, "unsupported LOG_OUTPUT")
				return
			}
			require.NoError(t, err)

			logger, err := depend.Resolve[*log.Logger]()
			require.NoError(t, err)
			assert.Equal(t, "smartread ", logger.Prefix())
			assert.Equal(t, tt.expectedFlags, logger.Flags())
		})
	}
}
