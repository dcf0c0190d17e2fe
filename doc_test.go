// SPDX-License-Identifier: MIT

package linsys_test

import (
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDocCommentFormatted guards the package overview against the doc-comment
// rewrites gofmt applies (list markers, code-block indentation).
func TestDocCommentFormatted(t *testing.T) {
	src, err := os.ReadFile("doc.go")
	require.NoError(t, err)

	got, err := format.Source(src)
	require.NoError(t, err)
	require.Equal(t, string(src), string(got))
}
