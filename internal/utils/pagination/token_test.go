package pagination_test

import (
	"testing"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	token := pagination.EncodeCursor(ts, "contact-123")
	gotTS, gotID, err := pagination.DecodeCursor(token)

	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, "contact-123", gotID)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeCursor("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeCursor("bm8tcGlwZS1oZXJl")
	assert.Error(t, err)
}
