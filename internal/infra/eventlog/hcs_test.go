package eventlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func TestSubscriptionErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	handler := subscriptionErrorHandler("0.0.7001", func(err error) {
		got = err
	})

	handler(*grpcstatus.New(codes.Unavailable, "mirror node down"))

	require.Error(t, got)
	assert.Contains(t, got.Error(), "0.0.7001")
	assert.Contains(t, got.Error(), "Unavailable")
	assert.Contains(t, got.Error(), "mirror node down")
}

func TestNewHCSLog_RequiresClient(t *testing.T) {
	t.Parallel()

	_, err := NewHCSLog(nil, "0.0.7001", false, "agritoken", newDiscardLogger())
	assert.Error(t, err)
}
