package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		opts           Options
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			opts:           Options{Level: "info"},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level warn with json",
			opts:           Options{Level: "warn", Format: "json", Service: "ledgerd"},
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:           "Valid log level debug",
			opts:           Options{Level: "debug", Format: "console"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			opts:          Options{Level: "invalid"},
			expectedError: true,
		},
		{
			name:          "Invalid format",
			opts:          Options{Level: "info", Format: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.opts)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			require.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
		})
	}
}
