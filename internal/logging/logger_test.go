package logging_test

import (
	"testing"

	"github.com/2beens/hevystats/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.ErrorLevel, logging.GetLevel("error"))
	assert.Equal(t, logrus.FatalLevel, logging.GetLevel("fatal"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("info"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warn"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("whatever"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel(""))
}
