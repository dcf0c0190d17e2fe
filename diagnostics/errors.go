// SPDX-License-Identifier: MIT

package diagnostics

import "errors"

// ErrEigenFailed is returned when the eigenvalue factorization of an
// iteration matrix does not converge.
var ErrEigenFailed = errors.New("diagnostics: eigen decomposition failed")
