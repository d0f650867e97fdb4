package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceSizeString(t *testing.T) {
	require.Equal(t, "728x90", (&Place{Width: 728, Height: 90}).SizeString())
	require.Equal(t, "728xX", (&Place{Width: 728}).SizeString())
	require.Equal(t, "Xx90", (&Place{Height: 90}).SizeString())
	require.Equal(t, "", (&Place{}).SizeString())
}
