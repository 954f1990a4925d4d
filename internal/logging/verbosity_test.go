package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetVerbosity(t *testing.T) {
	old := log.GetLevel()
	defer log.SetLevel(old)

	cases := []struct {
		flags int
		name  string
	}{
		{0, "ERROR"},
		{1, "WARN"},
		{2, "INFO"},
		{3, "DEBUG"},
		{4, "TRACE"},
		{9, "TRACE"},
	}
	for _, tc := range cases {
		SetVerbosity(make([]bool, tc.flags))
		require.Equal(t, tc.name, VerbosityName(), "-v x%d", tc.flags)
	}
}
