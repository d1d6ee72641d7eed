package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsThroughDerivedLoggers(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("plain message")
	mock.WithError(errors.New("boom")).Error("failed")
	mock.WithField(FieldCount, 3).WithField(FieldOperation, "export").Debug("detailed")

	require.Len(t, mock.Entries, 3)
	assert.True(t, mock.HasMessage("plain message"))
	assert.True(t, mock.HasMessage("failed"))
	assert.EqualError(t, mock.Entries[1].Error, "boom")
	require.Len(t, mock.Entries[2].Fields, 2)
	assert.Equal(t, FieldCount, mock.Entries[2].Fields[0].Key)
	assert.Equal(t, 3, mock.Entries[2].Fields[0].Value)
}

func TestMockLogger_DerivedLoggerDoesNotMutateParentFields(t *testing.T) {
	mock := &MockLogger{}

	derived := mock.WithField(FieldModel, "gemini-2.5-flash")
	mock.Info("without field")
	derived.Info("with field")

	require.Len(t, mock.Entries, 2)
	assert.Empty(t, mock.Entries[0].Fields)
	require.Len(t, mock.Entries[1].Fields, 1)
}

func TestNewLogrusAdapter_LevelAndFormat(t *testing.T) {
	adapter, ok := NewLogrusAdapter("debug", "json").(*LogrusAdapter)

	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.Level)
	_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestNewLogrusAdapter_InvalidLevelDefaultsToInfo(t *testing.T) {
	adapter, ok := NewLogrusAdapter("chatty", "text").(*LogrusAdapter)

	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.Level)
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: FieldExpenseID, Value: "abc"},
		{Key: FieldCount, Value: 2},
	})

	assert.Equal(t, logrus.Fields{FieldExpenseID: "abc", FieldCount: 2}, fields)
}
